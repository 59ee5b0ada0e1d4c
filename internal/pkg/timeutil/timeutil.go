// Package timeutil converts clock time strings to and from a canonical
// minutes-since-midnight representation.
//
// Accepted input grammar: "H", "HH", "H:MM", "HH:MM", "HH:MM:SS".
// Anything else, including out-of-range components, is rejected with
// ErrInvalidFormat rather than coerced.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFormat = errors.New("invalid time format")

const minutesPerDay = 24 * 60

// Parse converts a clock time string to minutes since midnight.
func Parse(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	hour, err := component(parts[0])
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = component(parts[1])
		if err != nil || minute > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
	}

	if len(parts) > 2 {
		second, err := component(parts[2])
		if err != nil || second > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
	}

	return hour*60 + minute, nil
}

// component parses a single 1-2 digit time component.
func component(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidFormat
		}
	}
	return strconv.Atoi(s)
}

// Format renders minutes since midnight as a zero-padded "HH:MM" string.
// Values outside a single day wrap around midnight.
func Format(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns the minutes since midnight of a timestamp's clock time.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
