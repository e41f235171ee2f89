// Package calendar provides civil-date arithmetic and movable-holiday
// calculations shared by all date-rule kinds.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownHoliday is returned when a holiday identifier has no calculator.
var ErrUnknownHoliday = errors.New("unknown holiday")

// HolidayEaster identifies the Gregorian Easter calculator.
const HolidayEaster = "easter"

// Easter calculates the date of Easter Sunday for a given year
// using the computus algorithm for the Gregorian calendar.
//
// The algorithm is based on the method described by J.M. Oudin (1940)
// and is valid for all years in the Gregorian calendar.
func Easter(year int) time.Time {
	// Computus algorithm for Gregorian calendar
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// HolidayDate computes the civil date of a movable holiday for the given
// year. Unknown identifiers return ErrUnknownHoliday so that callers can
// treat the rule as inactive instead of aborting resolution.
func HolidayDate(holiday string, year int) (time.Time, error) {
	switch holiday {
	case HolidayEaster:
		return Easter(year), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownHoliday, holiday)
	}
}
