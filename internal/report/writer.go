// Package report writes health-check status lines.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/sitewatch/sitecheck/internal/status"
)

// Line is a single status report for a site
type Line struct {
	Site string
	Code string // decoded status code, empty on success
}

// String renders the line without the trailing newline
func (l Line) String() string {
	return fmt.Sprintf("Checking '%s'. Result: %s", l.Site, status.Label(l.Code))
}

// Writer handles writing status lines to an output stream
type Writer struct {
	out    io.Writer
	lock   sync.Mutex
	count  uint64
	logger *slog.Logger
}

// NewWriter creates a new status line writer
func NewWriter(out io.Writer, logger *slog.Logger) (*Writer, error) {
	if out == nil {
		return nil, fmt.Errorf("output writer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{
		out:    out,
		logger: logger,
	}, nil
}

// Write writes one status line followed by a newline
func (w *Writer) Write(line Line) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if _, err := io.WriteString(w.out, line.String()+"\n"); err != nil {
		return fmt.Errorf("failed to write status line: %w", err)
	}
	w.count++

	w.logger.Debug("status line written",
		slog.String("site", line.Site),
		slog.String("result", status.Label(line.Code)),
		slog.Uint64("count", w.count))

	return nil
}

// Count returns the number of lines written so far
func (w *Writer) Count() uint64 {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.count
}
