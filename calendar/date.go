package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for civil dates
const DateLayout = "2006-01-02"

// Date is a civil date without time zone, formatted YYYY-MM-DD.
// The format sorts lexicographically, so string comparison gives
// chronological order.
type Date string

// ParseDate validates and returns a civil date
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// NewDate builds a civil date from its parts
func NewDate(year int, month time.Month, day int) Date {
	return Date(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// FromTime converts a time to the civil date of its location
func FromTime(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Today returns the current civil date for the given clock reading
func Today(now time.Time) Date {
	return FromTime(now)
}

// String returns the YYYY-MM-DD representation
func (d Date) String() string {
	return string(d)
}

// IsZero returns true for the empty date
func (d Date) IsZero() bool {
	return d == ""
}

// Valid returns true if the date parses as YYYY-MM-DD
func (d Date) Valid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// Before reports whether d is chronologically before other
func (d Date) Before(other Date) bool {
	return d < other
}

// After reports whether d is chronologically after other
func (d Date) After(other Date) bool {
	return d > other
}

// Time returns the midnight instant of the date in the given location
func (d Date) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, errors.New("location is required")
	}
	return time.ParseInLocation(DateLayout, string(d), loc)
}
