// Package healthcheck runs the simulated site health check loop.
package healthcheck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sitewatch/sitecheck/internal/report"
	"github.com/sitewatch/sitecheck/internal/request"
	"github.com/sitewatch/sitecheck/internal/status"
)

// sleepFunc blocks for d or until ctx is done
type sleepFunc func(ctx context.Context, d time.Duration) error

// Checker reports the decoded status of a site once per interval
type Checker struct {
	out    *report.Writer
	logger *slog.Logger
	sleep  sleepFunc
}

// New creates a Checker that writes status lines to out
func New(out io.Writer, logger *slog.Logger) (*Checker, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := report.NewWriter(out, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create status writer: %w", err)
	}

	return &Checker{
		out:    w,
		logger: logger,
		sleep:  sleepContext,
	}, nil
}

// Run validates args and then reports forever.
// A validation failure is returned as a *request.Error before anything is
// written. Once the loop starts it only returns on an output failure or
// when ctx is done.
func (c *Checker) Run(ctx context.Context, args []string) error {
	req, err := request.ParseRequest(args)
	if err != nil {
		return err
	}

	code := req.Site.StatusCode()
	line := report.Line{Site: req.Site.String(), Code: code}
	interval := req.Interval.Duration()

	c.logger.Debug("starting health check",
		slog.String("site", line.Site),
		slog.String("host", req.Site.Host()),
		slog.String("interval_ms", req.Interval.String()),
		slog.Bool("success", status.IsSuccess(code)))

	return c.loop(ctx, line, interval)
}

// loop writes the same line every interval. The line is fixed before the
// first iteration so every report is identical.
func (c *Checker) loop(ctx context.Context, line report.Line, interval time.Duration) error {
	for {
		if err := c.out.Write(line); err != nil {
			return err
		}
		if err := c.sleep(ctx, interval); err != nil {
			c.logger.Debug("health check stopped", slog.Uint64("lines", c.out.Count()))
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
