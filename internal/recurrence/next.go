package recurrence

import (
	"sort"
	"time"
)

// NextOccurrence computes the date of the next instance of a repeating task
// after current. ok is false only when the pattern fails validation; callers
// must treat that as "cannot recur", not as an exception.
//
// All arithmetic operates on calendar fields (year, month, day), never on
// elapsed durations, so results are stable across DST boundaries. The
// returned date is strictly later than current.
func NextOccurrence(current time.Time, p Pattern) (time.Time, bool) {
	if !Validate(p).Valid {
		return time.Time{}, false
	}

	switch p.Type {
	case TypeDaily:
		return current.AddDate(0, 0, p.interval()), true
	case TypeWeekly:
		return current.AddDate(0, 0, 7*p.interval()), true
	case TypeWeekday:
		return nextBusinessDay(current), true
	case TypeMonthly:
		return addMonthsClamped(current, p.interval(), current.Day()), true
	case TypeYearly:
		return addYearsClamped(current, p.interval()), true
	case TypeCustom:
		return nextCustom(current, p), true
	}
	return time.Time{}, false
}

// nextCustom dispatches on which optional fields are present. The priority
// order weekdays > ordinal pair > monthDay > bare interval is part of the
// contract.
func nextCustom(current time.Time, p Pattern) time.Time {
	switch {
	case len(p.Weekdays) > 0:
		return nextFromWeekdaySet(current, p.Weekdays)
	case p.hasOrdinalPair():
		return nextOrdinalWeekday(current, *p.Ordinal, *p.OrdinalWeekday, p.interval())
	case p.MonthDay != nil:
		return addMonthsClamped(current, p.interval(), *p.MonthDay)
	default:
		return current.AddDate(0, 0, p.interval())
	}
}

// nextBusinessDay advances one day at a time past Saturday and Sunday.
func nextBusinessDay(current time.Time) time.Time {
	d := current.AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// nextFromWeekdaySet lands on the smallest listed weekday strictly after the
// current one, wrapping into the next week when the current weekday is the
// last listed one.
func nextFromWeekdaySet(current time.Time, weekdays []int) time.Time {
	days := append([]int(nil), weekdays...)
	sort.Ints(days)

	cur := int(current.Weekday())
	for _, d := range days {
		if d > cur {
			return current.AddDate(0, 0, d-cur)
		}
	}
	return current.AddDate(0, 0, 7-cur+days[0])
}

// nextOrdinalWeekday finds the ordinal-th occurrence of weekday in the month
// interval months ahead. A month that has no such occurrence (a 5th Monday
// in a four-Monday month) yields the last occurrence instead.
func nextOrdinalWeekday(current time.Time, ordinal, weekday, intervalMonths int) time.Time {
	year, month := addMonths(current.Year(), current.Month(), intervalMonths)

	count := 0
	last := 1
	for day := 1; day <= daysInMonth(year, month); day++ {
		candidate := onDay(current, year, month, day)
		if int(candidate.Weekday()) != weekday {
			continue
		}
		count++
		last = day
		if count == ordinal {
			return candidate
		}
	}
	return onDay(current, year, month, last)
}

// addMonthsClamped advances by n months and sets the day to targetDay,
// clamped to the length of the resulting month (Jan 31 + 1 month is
// Feb 28/29).
func addMonthsClamped(current time.Time, n, targetDay int) time.Time {
	year, month := addMonths(current.Year(), current.Month(), n)
	day := targetDay
	if limit := daysInMonth(year, month); day > limit {
		day = limit
	}
	return onDay(current, year, month, day)
}

// addYearsClamped advances by n years, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func addYearsClamped(current time.Time, n int) time.Time {
	year := current.Year() + n
	day := current.Day()
	if current.Month() == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return onDay(current, year, current.Month(), day)
}

// onDay rebuilds a date on the given calendar day, preserving the clock
// fields and location of the original.
func onDay(current time.Time, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(),
		current.Location())
}
