package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" form value into a date-only time.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Today returns the current date truncated to midnight UTC, matching the
// date-only columns in the store.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
