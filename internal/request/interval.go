package request

import (
	"strconv"
	"time"
)

const millisPerSecond = 1000

// IntervalDuration is the delay between two status reports, in milliseconds
type IntervalDuration struct {
	millis uint64
}

// ParseInterval parses a whole number of seconds in [0,255].
// A single leading '+' is allowed.
func ParseInterval(s string) (IntervalDuration, error) {
	digits := s
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}

	seconds, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return IntervalDuration{}, NewError(KindIntervalValue, s, err)
	}
	return IntervalDuration{millis: seconds * millisPerSecond}, nil
}

// IntervalFromMillis wraps a millisecond count as is
func IntervalFromMillis(ms uint64) IntervalDuration {
	return IntervalDuration{millis: ms}
}

// Millis returns the interval in milliseconds
func (d IntervalDuration) Millis() uint64 {
	return d.millis
}

// Duration returns the interval as a time.Duration
func (d IntervalDuration) Duration() time.Duration {
	return time.Duration(d.millis) * time.Millisecond
}

// String renders the millisecond count
func (d IntervalDuration) String() string {
	return strconv.FormatUint(d.millis, 10)
}
