package generator

import (
	"fmt"
	"time"
)

// Default tracking window: one night, sampled every ten minutes (43 points).
var (
	DefaultStart    = mustParse("2025-06-15T21:00:00")
	DefaultEnd      = mustParse("2025-06-16T04:00:00")
	DefaultInterval = 10 * time.Minute
)

func mustParse(s string) Timestamp {
	t, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeSeries returns the instants start, start+interval, ... up to and
// including the last one that is not after end.
func TimeSeries(start, end Timestamp, interval time.Duration) ([]Timestamp, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidInput, interval)
	}
	if start.After(end.Time) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidInput, start, end)
	}

	n := int(end.Sub(start.Time)/interval) + 1
	times := make([]Timestamp, 0, n)
	for cur := start.Time; !cur.After(end.Time); cur = cur.Add(interval) {
		times = append(times, Timestamp{cur})
	}
	return times, nil
}

// DefaultTimeSeries is TimeSeries over the default night window.
func DefaultTimeSeries() []Timestamp {
	times, err := TimeSeries(DefaultStart, DefaultEnd, DefaultInterval)
	if err != nil {
		panic(err)
	}
	return times
}
