package recurrence

import (
	"fmt"
	"sort"
	"strings"
)

// Result is the outcome of Validate. Valid is true iff Errors is empty.
type Result struct {
	Valid  bool
	Errors []string
}

// InvalidPatternError is returned by Normalize when validation fails. It
// carries the full accumulated error list, not just the first failure.
type InvalidPatternError struct {
	Errors []string
}

func (e *InvalidPatternError) Error() string {
	return "invalid recurrence pattern: " + strings.Join(e.Errors, "; ")
}

var validTypes = map[Type]bool{
	TypeDaily:   true,
	TypeWeekly:  true,
	TypeWeekday: true,
	TypeMonthly: true,
	TypeYearly:  true,
	TypeCustom:  true,
}

// Validate checks a pattern structurally. An unknown type short-circuits
// with a single error; otherwise every applicable field error is collected
// so callers can surface them all at once.
func Validate(p Pattern) Result {
	if !validTypes[p.Type] {
		return Result{Errors: []string{fmt.Sprintf("invalid recurrence type: %q", string(p.Type))}}
	}

	var errs []string

	if p.Interval != nil && *p.Interval < 1 {
		errs = append(errs, "interval must be a positive integer")
	}

	if p.Weekdays != nil {
		if len(p.Weekdays) == 0 {
			errs = append(errs, "weekdays must not be empty")
		}
		for _, d := range p.Weekdays {
			if d < 0 || d > 6 {
				errs = append(errs, fmt.Sprintf("weekday %d is out of range 0-6", d))
				break
			}
		}
	}

	if p.MonthDay != nil && (*p.MonthDay < 1 || *p.MonthDay > 31) {
		errs = append(errs, "monthDay must be between 1 and 31")
	}

	if p.Ordinal != nil && (*p.Ordinal < 1 || *p.Ordinal > 5) {
		errs = append(errs, "ordinal must be between 1 and 5")
	}

	if p.OrdinalWeekday != nil && (*p.OrdinalWeekday < 0 || *p.OrdinalWeekday > 6) {
		errs = append(errs, "ordinalWeekday must be between 0 and 6")
	}

	if p.Type == TypeCustom && !hasCustomShape(p) {
		errs = append(errs, "custom pattern requires weekdays, a month day, an ordinal weekday, or an interval greater than 1")
	}

	if (p.Ordinal != nil) != (p.OrdinalWeekday != nil) {
		errs = append(errs, "ordinal and ordinalWeekday must be provided together")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// hasCustomShape reports whether a custom pattern carries at least one
// distinguishing field.
func hasCustomShape(p Pattern) bool {
	if len(p.Weekdays) > 0 || p.MonthDay != nil || p.hasOrdinalPair() {
		return true
	}
	return p.Interval != nil && *p.Interval > 1
}

// Normalize validates p and returns a canonical copy: interval defaulted to
// 1 for the four standard interval types and dropped for weekday/custom
// unless explicitly greater than 1, weekdays deduplicated and sorted, and
// the ordinal pair kept only as a pair.
func Normalize(p Pattern) (Pattern, error) {
	res := Validate(p)
	if !res.Valid {
		return Pattern{}, &InvalidPatternError{Errors: res.Errors}
	}

	out := Pattern{Type: p.Type}

	switch p.Type {
	case TypeDaily, TypeWeekly, TypeMonthly, TypeYearly:
		out.Interval = intPtr(p.interval())
	default:
		if p.Interval != nil && *p.Interval > 1 {
			out.Interval = intPtr(*p.Interval)
		}
	}

	if len(p.Weekdays) > 0 {
		seen := make(map[int]bool, len(p.Weekdays))
		for _, d := range p.Weekdays {
			if !seen[d] {
				seen[d] = true
				out.Weekdays = append(out.Weekdays, d)
			}
		}
		sort.Ints(out.Weekdays)
	}

	if p.MonthDay != nil {
		out.MonthDay = intPtr(*p.MonthDay)
	}

	if p.hasOrdinalPair() {
		out.Ordinal = intPtr(*p.Ordinal)
		out.OrdinalWeekday = intPtr(*p.OrdinalWeekday)
	}

	return out, nil
}
