package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Date is a calendar day without time or zone.
// Month is zero-indexed (0 = January) to match the picker's convention.
type Date struct {
	Day   int
	Month int
	Year  int
}

// DateOf extracts the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Day: d, Month: int(m) - 1, Year: y}
}

// Time returns the date at the reference hour in loc.
// Midday keeps renderers that shift by a DST hour on the same calendar day.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, config.ReferenceHour, 0, 0, 0, loc)
}

// Valid reports whether the fields name an existing Gregorian day.
func (d Date) Valid() bool {
	if d.Month < 0 || d.Month > 11 || d.Day < 1 || d.Day > 31 {
		return false
	}
	return DateOf(d.Time(time.UTC)) == d
}

// String renders the date as yyyy-MM-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}
