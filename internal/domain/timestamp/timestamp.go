// Package timestamp provides a wall-clock instant that serializes to JSON as
// Unix milliseconds, the format used by stored collections and share tokens.
package timestamp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Time is an instant with millisecond precision.
type Time struct {
	time.Time
}

// Now returns the current time truncated to milliseconds, so that it survives
// a JSON round trip unchanged.
func Now() Time {
	return FromMillis(time.Now().UnixMilli())
}

// FromMillis converts Unix milliseconds to a Time.
func FromMillis(ms int64) Time {
	return Time{time.UnixMilli(ms)}
}

// Millis returns the instant as Unix milliseconds.
func (t Time) Millis() int64 {
	return t.UnixMilli()
}

// Equal reports whether t and u represent the same instant.
func (t Time) Equal(u Time) bool {
	return t.Time.Equal(u.Time)
}

// After reports whether t is later than u.
func (t Time) After(u Time) bool {
	return t.Time.After(u.Time)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return strconv.AppendInt(nil, t.Millis(), 10), nil
}

// UnmarshalJSON accepts an integer or floating point number of milliseconds.
// null leaves the value unchanged.
func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if ms, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*t = fromMillisOrZero(ms)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("timestamp: invalid value %s", b)
	}
	*t = fromMillisOrZero(int64(f))
	return nil
}

func fromMillisOrZero(ms int64) Time {
	if ms == 0 {
		return Time{}
	}
	return FromMillis(ms)
}
