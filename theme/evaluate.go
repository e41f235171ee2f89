package theme

import (
	"time"

	"github.com/zapponejosh/daythemes/calendar"
)

// IsActive reports whether rule matches the given date. Evaluation is a
// pure function of its inputs and total over well-formed rules: unknown
// holiday identifiers and nth occurrences that do not exist in the
// target year make the rule inactive rather than producing an error.
func IsActive(rule DateRule, date time.Time) bool {
	switch rule.Kind {
	case KindRange:
		return rangeActive(rule, date)
	case KindHolidayOffset:
		return holidayOffsetActive(rule, date)
	case KindNthWeekday:
		return nthWeekdayActive(rule, date)
	case KindAlways:
		return true
	default:
		return false
	}
}

func rangeActive(rule DateRule, date time.Time) bool {
	monthDay := calendar.MonthDay(date)
	if rule.From <= rule.To {
		return rule.From <= monthDay && monthDay <= rule.To
	}
	// Window wraps across the new year.
	return monthDay >= rule.From || monthDay <= rule.To
}

func holidayOffsetActive(rule DateRule, date time.Time) bool {
	holiday, err := calendar.HolidayDate(rule.Holiday, date.Year())
	if err != nil {
		return false
	}

	lo, hi := rule.Start, rule.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return inWindow(date, calendar.AddDays(holiday, lo), calendar.AddDays(holiday, hi))
}

func nthWeekdayActive(rule DateRule, date time.Time) bool {
	anchor, ok := calendar.NthWeekdayOfMonth(date.Year(), time.Month(rule.Month), time.Weekday(rule.Weekday), rule.N)
	if !ok {
		return false
	}

	if rule.Duration <= 1 {
		return calendar.SameDay(date, anchor)
	}

	// Center a window of Duration days on the anchor date.
	before := rule.Duration / 2
	after := rule.Duration - before - 1
	return inWindow(date, calendar.AddDays(anchor, -before), calendar.AddDays(anchor, after))
}

// inWindow reports whether date falls within [start, end], inclusive,
// comparing civil dates only.
func inWindow(date, start, end time.Time) bool {
	d := calendar.Midnight(date)
	return !d.Before(calendar.Midnight(start)) && !d.After(calendar.Midnight(end))
}
