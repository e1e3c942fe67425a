package timeutil

import "time"

// TimestampLayout is the canonical layout for logged timestamps.
const TimestampLayout = time.RFC3339Nano

// Clock returns the current time.
type Clock func() time.Time

// SystemClock reports the current wall-clock time in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// OrSystem returns c, or SystemClock when c is nil.
func OrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
