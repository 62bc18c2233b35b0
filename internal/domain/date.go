package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and CLI format of a calendar date.
const DateLayout = "2006-01-02"

// AsDate truncates t to its calendar date in t's own location and returns
// that date at midnight UTC.
func AsDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now.
func Today(now time.Time) time.Time {
	return AsDate(now)
}

// ParseDate reads a YYYY-MM-DD date. A full RFC 3339 timestamp is accepted
// too and reduced to its date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return AsDate(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
