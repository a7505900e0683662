package util

import "time"

// DateLayout is the wire format for expense dates and range bounds.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// YearMonth decomposes a date into calendar year and 1-indexed month in UTC.
// Month bucketing is always done in UTC so records near month boundaries
// land in the same bucket regardless of server locale.
func YearMonth(t time.Time) (int, int) {
	u := t.UTC()
	return u.Year(), int(u.Month())
}

// EndOfDay returns the last instant of the given calendar day in UTC, used
// to make range upper bounds inclusive.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
}
