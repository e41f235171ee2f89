package theme

import (
	"testing"
	"time"

	"github.com/zapponejosh/daythemes/calendar"
)

func TestIsActive_Range(t *testing.T) {
	wrap := DateRule{Kind: KindRange, From: "12-26", To: "01-07"}
	plain := DateRule{Kind: KindRange, From: "06-01", To: "08-31"}

	tests := []struct {
		name string
		rule DateRule
		date time.Time
		want bool
	}{
		{"wrap before new year", wrap, calendar.Date(2025, time.December, 31), true},
		{"wrap after new year", wrap, calendar.Date(2026, time.January, 3), true},
		{"wrap first day", wrap, calendar.Date(2025, time.December, 26), true},
		{"wrap last day", wrap, calendar.Date(2026, time.January, 7), true},
		{"wrap outside", wrap, calendar.Date(2025, time.June, 15), false},
		{"plain inside", plain, calendar.Date(2025, time.July, 4), true},
		{"plain first day", plain, calendar.Date(2025, time.June, 1), true},
		{"plain last day", plain, calendar.Date(2025, time.August, 31), true},
		{"plain before", plain, calendar.Date(2025, time.May, 31), false},
		{"plain after", plain, calendar.Date(2025, time.September, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.rule, tt.date); got != tt.want {
				t.Errorf("IsActive(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsActive_HolidayOffset(t *testing.T) {
	// Easter 2025 is April 20.
	rule := DateRule{Kind: KindHolidayOffset, Holiday: "easter", Start: -2, End: 0}

	tests := []struct {
		name string
		rule DateRule
		date time.Time
		want bool
	}{
		{"window start", rule, calendar.Date(2025, time.April, 18), true},
		{"inside window", rule, calendar.Date(2025, time.April, 19), true},
		{"holiday itself", rule, calendar.Date(2025, time.April, 20), true},
		{"after window", rule, calendar.Date(2025, time.April, 21), false},
		{"before window", rule, calendar.Date(2025, time.April, 17), false},
		{
			// Offsets given in either order define the same window.
			"reversed offsets low bound",
			DateRule{Kind: KindHolidayOffset, Holiday: "easter", Start: 1, End: -2},
			calendar.Date(2025, time.April, 18),
			true,
		},
		{
			"reversed offsets high bound",
			DateRule{Kind: KindHolidayOffset, Holiday: "easter", Start: 1, End: -2},
			calendar.Date(2025, time.April, 21),
			true,
		},
		{
			"unknown holiday is inactive",
			DateRule{Kind: KindHolidayOffset, Holiday: "solstice", Start: 0, End: 0},
			calendar.Date(2025, time.June, 21),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.rule, tt.date); got != tt.want {
				t.Errorf("IsActive(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsActive_NthWeekday(t *testing.T) {
	// 4th Thursday of November 2025 is the 27th.
	thanksgiving := DateRule{Kind: KindNthWeekday, Month: 11, Weekday: 4, N: 4}
	// 2nd Sunday of May 2025 is the 11th; a 7-day window covers the 8th-14th.
	window := DateRule{Kind: KindNthWeekday, Month: 5, Weekday: 0, N: 2, Duration: 7}
	// A 4-day window sits 2 days before and 1 after the anchor: 9th-12th.
	evenWindow := DateRule{Kind: KindNthWeekday, Month: 5, Weekday: 0, N: 2, Duration: 4}

	tests := []struct {
		name string
		rule DateRule
		date time.Time
		want bool
	}{
		{"anchor day", thanksgiving, calendar.Date(2025, time.November, 27), true},
		{"day before anchor", thanksgiving, calendar.Date(2025, time.November, 26), false},
		{"day after anchor", thanksgiving, calendar.Date(2025, time.November, 28), false},
		{"same day other year", thanksgiving, calendar.Date(2026, time.November, 27), false},
		{"anchor next year", thanksgiving, calendar.Date(2026, time.November, 26), true},
		{"window start", window, calendar.Date(2025, time.May, 8), true},
		{"window anchor", window, calendar.Date(2025, time.May, 11), true},
		{"window end", window, calendar.Date(2025, time.May, 14), true},
		{"window before", window, calendar.Date(2025, time.May, 7), false},
		{"window after", window, calendar.Date(2025, time.May, 15), false},
		{"even window start", evenWindow, calendar.Date(2025, time.May, 9), true},
		{"even window end", evenWindow, calendar.Date(2025, time.May, 12), true},
		{"even window after", evenWindow, calendar.Date(2025, time.May, 13), false},
		{
			"missing occurrence is inactive",
			DateRule{Kind: KindNthWeekday, Month: 11, Weekday: 4, N: 5},
			calendar.Date(2025, time.November, 27),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.rule, tt.date); got != tt.want {
				t.Errorf("IsActive(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsActive_Always(t *testing.T) {
	rule := DateRule{Kind: KindAlways}
	for _, date := range []time.Time{
		calendar.Date(2025, time.January, 1),
		calendar.Date(2025, time.June, 15),
		calendar.Date(1900, time.February, 28),
	} {
		if !IsActive(rule, date) {
			t.Errorf("IsActive(always, %s) = false, want true", date.Format("2006-01-02"))
		}
	}
}

func TestIsActive_UnknownKind(t *testing.T) {
	rule := DateRule{Kind: RuleKind("bogus")}
	if IsActive(rule, calendar.Date(2025, time.June, 15)) {
		t.Error("IsActive(bogus kind) = true, want false")
	}
}
