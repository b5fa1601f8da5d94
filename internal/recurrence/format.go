package recurrence

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// InvalidPatternText is returned by Format for patterns that fail validation.
const InvalidPatternText = "Invalid recurrence pattern"

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Format renders a pattern as a deterministic human-readable phrase, e.g.
// "Every 2 weeks" or "Every 3rd Tuesday of the month". ParseFormatted
// inverts every phrase Format produces.
func Format(p Pattern) string {
	if !Validate(p).Valid {
		return InvalidPatternText
	}

	n := p.interval()
	switch p.Type {
	case TypeDaily:
		return everyUnit(n, "day")
	case TypeWeekly:
		return everyUnit(n, "week")
	case TypeMonthly:
		return everyUnit(n, "month")
	case TypeYearly:
		return everyUnit(n, "year")
	case TypeWeekday:
		return "Every weekday"
	case TypeCustom:
		return formatCustom(p, n)
	}
	return InvalidPatternText
}

func formatCustom(p Pattern, n int) string {
	switch {
	case len(p.Weekdays) > 0:
		return "Every " + weekdayList(p.Weekdays)
	case p.hasOrdinalPair():
		s := fmt.Sprintf("Every %s %s of the month",
			ordinalSuffix(*p.Ordinal), weekdayNames[*p.OrdinalWeekday])
		if n > 1 {
			s += fmt.Sprintf(" every %d months", n)
		}
		return s
	case p.MonthDay != nil:
		s := fmt.Sprintf("Every %s of the month", ordinalSuffix(*p.MonthDay))
		if n > 1 {
			s += fmt.Sprintf(" every %d months", n)
		}
		return s
	default:
		return fmt.Sprintf("Every %d days", n)
	}
}

func everyUnit(n int, unit string) string {
	if n == 1 {
		return "Every " + unit
	}
	return fmt.Sprintf("Every %d %ss", n, unit)
}

// weekdayList renders a weekday set: one day by full name, two or more by
// three-letter abbreviation with an Oxford comma from three up.
func weekdayList(weekdays []int) string {
	days := append([]int(nil), weekdays...)
	sort.Ints(days)

	switch len(days) {
	case 1:
		return weekdayNames[days[0]]
	case 2:
		return abbrev(days[0]) + " and " + abbrev(days[1])
	default:
		var b strings.Builder
		for i, d := range days[:len(days)-1] {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(abbrev(d))
		}
		b.WriteString(", and ")
		b.WriteString(abbrev(days[len(days)-1]))
		return b.String()
	}
}

func abbrev(weekday int) string {
	return weekdayNames[weekday][:3]
}

// ordinalSuffix renders n with its English ordinal suffix (1st, 2nd, 3rd,
// 4th, ... with 11th-13th always taking "th").
func ordinalSuffix(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

var (
	intervalPhraseRe = regexp.MustCompile(`^(\d+) (days|weeks|months|years)$`)
	monthDayRe       = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th) of the month(?: every (\d+) months)?$`)
	ordinalDayRe     = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th) (sunday|monday|tuesday|wednesday|thursday|friday|saturday) of the month(?: every (\d+) months)?$`)
)

// ParseFormatted maps a canonical phrase back to its pattern,
// case-insensitively. It only claims to invert Format's own output: any
// other text yields ok=false, which is not an error.
func ParseFormatted(text string) (Pattern, bool) {
	phrase := strings.ToLower(strings.TrimSpace(text))
	phrase = strings.Join(strings.Fields(phrase), " ")

	rest, found := strings.CutPrefix(phrase, "every ")
	if !found {
		return Pattern{}, false
	}

	switch rest {
	case "day":
		return NewDaily(1), true
	case "week":
		return NewWeekly(1), true
	case "month":
		return NewMonthly(1), true
	case "year":
		return NewYearly(1), true
	case "weekday":
		return NewWeekday(), true
	}

	if m := intervalPhraseRe.FindStringSubmatch(rest); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 {
			return Pattern{}, false
		}
		switch m[2] {
		case "days":
			return NewDaily(n), true
		case "weeks":
			return NewWeekly(n), true
		case "months":
			return NewMonthly(n), true
		case "years":
			return NewYearly(n), true
		}
	}

	if m := ordinalDayRe.FindStringSubmatch(rest); m != nil {
		ordinal, _ := strconv.Atoi(m[1])
		weekday := weekdayIndex(m[2])
		p := NewOrdinalWeekday(ordinal, weekday)
		if m[3] != "" {
			n, _ := strconv.Atoi(m[3])
			p.Interval = intPtr(n)
		}
		if !Validate(p).Valid {
			return Pattern{}, false
		}
		return p, true
	}

	if m := monthDayRe.FindStringSubmatch(rest); m != nil {
		day, _ := strconv.Atoi(m[1])
		p := NewMonthDay(day)
		if m[2] != "" {
			n, _ := strconv.Atoi(m[2])
			p.Interval = intPtr(n)
		}
		if !Validate(p).Valid {
			return Pattern{}, false
		}
		return p, true
	}

	if days, ok := parseWeekdayList(rest); ok {
		return NewWeekdaySet(days), true
	}

	return Pattern{}, false
}

// parseWeekdayList reads "monday", "mon and wed", or "mon, wed, and fri"
// (full names or three-letter abbreviations).
func parseWeekdayList(phrase string) ([]int, bool) {
	phrase = strings.ReplaceAll(phrase, ", and ", ", ")
	phrase = strings.ReplaceAll(phrase, " and ", ", ")

	var days []int
	for _, token := range strings.Split(phrase, ", ") {
		d := weekdayIndex(strings.TrimSpace(token))
		if d < 0 {
			return nil, false
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, false
	}
	return days, true
}

// weekdayIndex resolves a lowercase full or three-letter weekday name,
// returning -1 when the token is not a weekday.
func weekdayIndex(name string) int {
	for i, full := range weekdayNames {
		lower := strings.ToLower(full)
		if name == lower || name == lower[:3] {
			return i
		}
	}
	return -1
}
