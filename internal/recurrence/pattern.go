// Package recurrence implements repetition rules for tasks: validation and
// normalization of a pattern, computing the next occurrence date after a
// completion, and the bidirectional mapping between a pattern and its
// human-readable phrase ("Every 3rd Tuesday of the month").
package recurrence

// Type discriminates the recurrence shapes.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeWeekday Type = "weekday"
	TypeMonthly Type = "monthly"
	TypeYearly  Type = "yearly"
	TypeCustom  Type = "custom"
)

// Pattern describes how a task repeats. Optional fields are pointers so that
// "absent" stays distinct from a zero value (Sunday is weekday 0).
//
// A pattern is a value object: it is validated before use and never mutated
// in place. Normalize returns a fresh copy.
type Pattern struct {
	Type Type `json:"type"`

	// Interval is the repetition multiplier ("every N units"). Defaults to 1
	// for daily/weekly/monthly/yearly; has no default for weekday.
	Interval *int `json:"interval,omitempty"`

	// Weekdays holds day-of-week values 0-6 (Sunday=0). Custom only.
	Weekdays []int `json:"weekdays,omitempty"`

	// MonthDay is a day-of-month 1-31. Custom only.
	MonthDay *int `json:"monthDay,omitempty"`

	// Ordinal (1-5) and OrdinalWeekday (0-6) together describe "the Nth
	// weekday of the month". They must be supplied as a pair. Custom only.
	Ordinal        *int `json:"ordinal,omitempty"`
	OrdinalWeekday *int `json:"ordinalWeekday,omitempty"`
}

// NewDaily returns a pattern repeating every interval days.
func NewDaily(interval int) Pattern {
	return Pattern{Type: TypeDaily, Interval: &interval}
}

// NewWeekly returns a pattern repeating every interval weeks.
func NewWeekly(interval int) Pattern {
	return Pattern{Type: TypeWeekly, Interval: &interval}
}

// NewWeekday returns a pattern repeating every business day (Mon-Fri).
func NewWeekday() Pattern {
	return Pattern{Type: TypeWeekday}
}

// NewMonthly returns a pattern repeating every interval months.
func NewMonthly(interval int) Pattern {
	return Pattern{Type: TypeMonthly, Interval: &interval}
}

// NewYearly returns a pattern repeating every interval years.
func NewYearly(interval int) Pattern {
	return Pattern{Type: TypeYearly, Interval: &interval}
}

// NewWeekdaySet returns a custom pattern repeating on the given weekdays
// (0=Sunday .. 6=Saturday).
func NewWeekdaySet(weekdays []int) Pattern {
	return Pattern{Type: TypeCustom, Weekdays: weekdays}
}

// NewMonthDay returns a custom pattern repeating on the given day of the
// month, clamped to shorter months.
func NewMonthDay(day int) Pattern {
	return Pattern{Type: TypeCustom, MonthDay: &day}
}

// NewOrdinalWeekday returns a custom pattern repeating on the ordinal-th
// occurrence of weekday in each month (e.g. 3rd Tuesday).
func NewOrdinalWeekday(ordinal, weekday int) Pattern {
	return Pattern{Type: TypeCustom, Ordinal: &ordinal, OrdinalWeekday: &weekday}
}

// interval returns the effective repetition multiplier, defaulting to 1.
func (p Pattern) interval() int {
	if p.Interval != nil && *p.Interval > 0 {
		return *p.Interval
	}
	return 1
}

func (p Pattern) hasOrdinalPair() bool {
	return p.Ordinal != nil && p.OrdinalWeekday != nil
}

func intPtr(v int) *int { return &v }
