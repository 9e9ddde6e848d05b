package healthcheck

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sitewatch/sitecheck/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSleeper records requested durations and cancels after a number of calls
type fakeSleeper struct {
	calls  []time.Duration
	limit  int
	cancel context.CancelFunc
}

func (f *fakeSleeper) sleep(ctx context.Context, d time.Duration) error {
	f.calls = append(f.calls, d)
	if len(f.calls) >= f.limit {
		f.cancel()
	}
	return ctx.Err()
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func newTestChecker(t *testing.T, out io.Writer, limit int) (*Checker, *fakeSleeper, context.Context) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	checker, err := New(out, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	sleeper := &fakeSleeper{limit: limit, cancel: cancel}
	checker.sleep = sleeper.sleep
	return checker, sleeper, ctx
}

func TestRun_SuccessScenario(t *testing.T) {
	var out bytes.Buffer
	checker, sleeper, ctx := newTestChecker(t, &out, 3)

	err := checker.Run(ctx, []string{"prog", "1", "http://host/200"})
	require.ErrorIs(t, err, context.Canceled)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "Checking 'http://host/200'. Result: OK(200)", line)
	}
	assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, sleeper.calls)
}

func TestRun_FailureScenario(t *testing.T) {
	var out bytes.Buffer
	checker, sleeper, ctx := newTestChecker(t, &out, 2)

	err := checker.Run(ctx, []string{"prog", "0", "http://host/503"})
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t,
		"Checking 'http://host/503'. Result: ERR(503)\nChecking 'http://host/503'. Result: ERR(503)\n",
		out.String())
	assert.Equal(t, []time.Duration{0, 0}, sleeper.calls)
}

func TestRun_EmptyPathIsSuccess(t *testing.T) {
	var out bytes.Buffer
	checker, _, ctx := newTestChecker(t, &out, 1)

	err := checker.Run(ctx, []string{"prog", "5", "http://www.example.com"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Checking 'http://www.example.com/'. Result: OK(200)\n", out.String())
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind request.ErrorKind
	}{
		{"wrong interval", []string{"prog", "abc", "http://host"}, request.KindIntervalValue},
		{"interval before site", []string{"", "string", "some_random_string"}, request.KindIntervalValue},
		{"bad site", []string{"", "1", "some_random_string"}, request.KindSiteName},
		{"too few args", []string{"one", "two"}, request.KindArgsQty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			checker, sleeper, ctx := newTestChecker(t, &out, 1)

			err := checker.Run(ctx, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.kind, request.KindOf(err))
			assert.Empty(t, out.String())
			assert.Empty(t, sleeper.calls)
		})
	}
}

func TestRun_OutputFailureIsFatal(t *testing.T) {
	checker, sleeper, ctx := newTestChecker(t, failingWriter{}, 10)

	err := checker.Run(ctx, []string{"prog", "1", "http://host/500"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout closed")
	assert.Empty(t, sleeper.calls)
}

func TestRun_QuietAtInfoLevel(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))

	checker, err := New(&out, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sleeper := &fakeSleeper{limit: 2, cancel: cancel}
	checker.sleep = sleeper.sleep

	err = checker.Run(ctx, []string{"prog", "1", "http://host/500"})
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
	assert.Empty(t, logs.String())
}

func TestNew_NilOutput(t *testing.T) {
	checker, err := New(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, checker)
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
