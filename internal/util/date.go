package util

import "time"

// DayFormat is the calendar-date wire format used across the API.
const DayFormat = "2006-01-02"

// Today returns the current calendar day at UTC midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC midnight timestamp.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// IsFutureDay reports whether t falls on a calendar day after today.
func IsFutureDay(t time.Time) bool {
	return t.After(Today())
}
