package domain

import (
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Truncate drops the time of day, keeping t's calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end.
// Negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours() / 24)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return Truncate(time.Now().UTC())
}
