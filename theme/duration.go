package theme

import (
	"math"

	"github.com/zapponejosh/daythemes/calendar"
)

// Unbounded is the duration assigned to rules that match every date.
// It is larger than any finite rule span, so such rules always rank
// after every finite-duration match.
const Unbounded = math.MaxInt

// DurationDays estimates a rule's span in days for the given year. The
// value is used only to rank concurrently active rules: a shorter span
// is more specific and sorts first.
func DurationDays(rule DateRule, year int) int {
	switch rule.Kind {
	case KindRange:
		return rangeDuration(rule, year)
	case KindHolidayOffset:
		span := rule.End - rule.Start
		if span < 0 {
			span = -span
		}
		return span + 1
	case KindNthWeekday:
		if rule.Duration > 1 {
			return rule.Duration
		}
		return 1
	case KindAlways:
		return Unbounded
	default:
		return Unbounded
	}
}

func rangeDuration(rule DateRule, year int) int {
	fromMonth, fromDay, err := calendar.ParseMonthDay(rule.From)
	if err != nil {
		return Unbounded
	}
	toMonth, toDay, err := calendar.ParseMonthDay(rule.To)
	if err != nil {
		return Unbounded
	}

	start := calendar.Date(year, fromMonth, fromDay)
	end := calendar.Date(year, toMonth, toDay)
	if end.Before(start) {
		// Wrapping window: the end bound lands in the following year.
		end = end.AddDate(1, 0, 0)
	}
	return calendar.DaysBetween(start, end) + 1
}
