package utils

import "time"

// DateOnly is the wire format for calendar dates (assignment days, due dates,
// expiration dates).
const DateOnly = "2006-01-02"

// NowISO returns the current UTC time in RFC3339.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseISO parses an RFC3339 timestamp, returning the zero time on failure.
func ParseISO(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDate parses a date in DateOnly or RFC3339 form, returning the zero
// time on failure.
func ParseDate(s string) time.Time {
	if t, err := time.Parse(DateOnly, s); err == nil {
		return t
	}
	return ParseISO(s)
}
