// Package theme implements date-rule evaluation and specificity-ranked
// theme resolution over an immutable rule catalog.
package theme

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleKind discriminates the DateRule variants.
type RuleKind string

// Rule kinds.
const (
	KindRange         RuleKind = "range"
	KindHolidayOffset RuleKind = "holiday-offset"
	KindNthWeekday    RuleKind = "nth-weekday"
	KindAlways        RuleKind = "always"
)

// DateRule is a declarative predicate over civil dates. Exactly one
// variant is populated, selected by Kind.
type DateRule struct {
	Kind RuleKind

	// range: inclusive "MM-DD" bounds. From > To signals a window that
	// wraps across the new year (e.g. 12-26 through 01-07).
	From string
	To   string

	// holiday-offset: signed day offsets, inclusive, from a movable
	// holiday's computed date for the target year.
	Holiday string
	Start   int
	End     int

	// nth-weekday: the n-th occurrence of Weekday (0=Sunday) within
	// Month, optionally widened to a centered window of Duration days.
	Month    int
	Weekday  int
	N        int
	Duration int
}

// ruleWire is the serialized shape of a DateRule. Pointer fields keep
// zero values (end: 0, weekday: 0) distinguishable from absent fields.
type ruleWire struct {
	Kind     RuleKind `yaml:"kind" json:"kind"`
	From     string   `yaml:"from,omitempty" json:"from,omitempty"`
	To       string   `yaml:"to,omitempty" json:"to,omitempty"`
	Holiday  string   `yaml:"holiday,omitempty" json:"holiday,omitempty"`
	Start    *int     `yaml:"start,omitempty" json:"start,omitempty"`
	End      *int     `yaml:"end,omitempty" json:"end,omitempty"`
	Month    *int     `yaml:"month,omitempty" json:"month,omitempty"`
	Weekday  *int     `yaml:"weekday,omitempty" json:"weekday,omitempty"`
	N        *int     `yaml:"n,omitempty" json:"n,omitempty"`
	Duration *int     `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// wire projects the populated variant onto the serialized shape,
// emitting only the fields that belong to the rule's kind.
func (r DateRule) wire() ruleWire {
	w := ruleWire{Kind: r.Kind}
	switch r.Kind {
	case KindRange:
		w.From = r.From
		w.To = r.To
	case KindHolidayOffset:
		w.Holiday = r.Holiday
		w.Start = intPtr(r.Start)
		w.End = intPtr(r.End)
	case KindNthWeekday:
		w.Month = intPtr(r.Month)
		w.Weekday = intPtr(r.Weekday)
		w.N = intPtr(r.N)
		if r.Duration > 1 {
			w.Duration = intPtr(r.Duration)
		}
	case KindAlways:
	}
	return w
}

func (r *DateRule) fromWire(w ruleWire) error {
	switch w.Kind {
	case KindRange, KindHolidayOffset, KindNthWeekday, KindAlways:
	default:
		return fmt.Errorf("unknown rule kind %q", w.Kind)
	}

	r.Kind = w.Kind
	r.From = w.From
	r.To = w.To
	r.Holiday = w.Holiday
	r.Start = intVal(w.Start)
	r.End = intVal(w.End)
	r.Month = intVal(w.Month)
	r.Weekday = intVal(w.Weekday)
	r.N = intVal(w.N)
	r.Duration = intVal(w.Duration)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r DateRule) MarshalYAML() (interface{}, error) {
	return r.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *DateRule) UnmarshalYAML(value *yaml.Node) error {
	var w ruleWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return r.fromWire(w)
}

// MarshalJSON implements json.Marshaler.
func (r DateRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DateRule) UnmarshalJSON(data []byte) error {
	var w ruleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return r.fromWire(w)
}

func intPtr(n int) *int {
	return &n
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
