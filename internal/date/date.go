// Package date provides a day-granularity calendar date for ledger records.
package date

import (
	"fmt"
	"time"
)

// Format is the ISO-8601 layout used to persist dates.
const Format = "2006-01-02"

// MonthFormat is the layout for a year-month period as entered by the user.
const MonthFormat = "2006-01"

// Date represents a calendar date with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns the canonical representation of the day, midnight UTC.
func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// In reports whether d falls in the given calendar month, ignoring the day.
func (d Date) In(year int, month time.Month) bool {
	return d.y == year && d.m == month
}

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses an ISO-8601 date. The format is strict: four-digit year,
// two-digit month and day, so parse success agrees across implementations.
func Parse(str string) (Date, error) {
	t, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseMonth parses a YYYY-MM period into its year and month.
func ParseMonth(str string) (int, time.Month, error) {
	t, err := time.Parse(MonthFormat, str)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want format %q: %w", str, MonthFormat, err)
	}
	return t.Year(), t.Month(), nil
}
