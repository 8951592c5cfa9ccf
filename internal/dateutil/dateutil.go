// Package dateutil converts between calendar dates and the canonical
// YYYY-MM-DD key used to group tasks by day.
package dateutil

import (
	"strings"
	"time"
)

const keyLayout = "2006/01/02"

// FormatKey renders the local year, month, and day of t as YYYY-MM-DD.
func FormatKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseKey parses a canonical date key back to local midnight of that day.
// Dash separators are normalized to slashes first, so both YYYY-MM-DD and
// YYYY/MM/DD forms are accepted.
func ParseKey(s string) (time.Time, error) {
	s = strings.ReplaceAll(s, "-", "/")
	return time.ParseInLocation(keyLayout, s, time.Local)
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable millisecond of the day containing t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}
