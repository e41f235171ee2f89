package calendar

import (
	"fmt"
	"time"
)

// Date returns the UTC midnight time for a civil year/month/day.
// All rule evaluation works on these timezone-naive dates.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates a time to its civil date, discarding clock and zone.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return Date(year, month, day)
}

// AddDays adds a signed number of calendar days, rolling across month
// and year boundaries.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DaysBetween returns the number of calendar days from a to b,
// negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}

// SameDay reports whether two times fall on the same civil date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthDay formats a date as a zero-padded "MM-DD" string. Lexicographic
// comparison of these strings matches chronological order within a year.
func MonthDay(t time.Time) string {
	return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
}

// ParseMonthDay parses a zero-padded "MM-DD" string into its month and
// day components.
func ParseMonthDay(s string) (time.Month, int, error) {
	var month, day int
	if _, err := fmt.Sscanf(s, "%2d-%2d", &month, &day); err != nil {
		return 0, 0, fmt.Errorf("invalid month-day %q: %w", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("invalid month-day %q", s)
	}
	return time.Month(month), day, nil
}

// NthWeekdayOfMonth returns the date of the n-th occurrence of weekday
// within the given month, scanning day numbers and skipping any that
// overflow into the next month. ok is false when the month has fewer
// than n occurrences.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) (date time.Time, ok bool) {
	if n < 1 {
		return time.Time{}, false
	}

	count := 0
	for day := 1; day <= 31; day++ {
		t := Date(year, month, day)
		if t.Month() != month {
			// time.Date normalizes overflow days into the next month.
			break
		}
		if t.Weekday() != weekday {
			continue
		}
		count++
		if count == n {
			return t, true
		}
	}

	return time.Time{}, false
}
