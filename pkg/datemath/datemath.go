// Package datemath recognizes calendar phrases inside free text and turns
// them into concrete dates relative to an explicit reference time. No
// implicit clock is read; callers pass the reference in, which keeps every
// result reproducible in tests.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extraction is the result of scanning text for date and time phrases.
type Extraction struct {
	// Date is the recognized calendar date at start of day in the reference
	// location, nil when the text carries no date phrase.
	Date *time.Time

	// TimeOfDay is a zero-padded 24-hour "HH:mm" string, empty when the text
	// carries no clock time. It is extracted independently of Date.
	TimeOfDay string

	// Remainder is the input with every matched phrase removed. Surrounding
	// whitespace is left to the caller.
	Remainder string
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	todayRe    = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextDayRe  = regexp.MustCompile(`(?i)\bnext (sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	nextWeekRe = regexp.MustCompile(`(?i)\bnext week\b`)
	inUnitsRe  = regexp.MustCompile(`(?i)\bin (\d+) (days?|weeks?|months?)\b`)

	noonRe   = regexp.MustCompile(`(?i)\bnoon\b`)
	twelveRe = regexp.MustCompile(`(?i)\b(?:at )?(\d{1,2})(?::([0-5]\d))? ?(am|pm)\b`)
	clockRe  = regexp.MustCompile(`\b(?:at )?([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// Extract scans text for at most one date phrase and one clock time, both
// resolved against ref. Each recognized phrase is removed from Remainder.
func Extract(text string, ref time.Time) Extraction {
	out := Extraction{Remainder: text}

	if date, rest, ok := extractDate(out.Remainder, ref); ok {
		out.Date = &date
		out.Remainder = rest
	}

	if hhmm, rest, ok := extractTime(out.Remainder); ok {
		out.TimeOfDay = hhmm
		out.Remainder = rest
	}

	return out
}

func extractDate(text string, ref time.Time) (time.Time, string, bool) {
	if loc := todayRe.FindStringIndex(text); loc != nil {
		return StartOfDay(ref), cut(text, loc), true
	}
	if loc := tomorrowRe.FindStringIndex(text); loc != nil {
		return StartOfDay(ref.AddDate(0, 0, 1)), cut(text, loc), true
	}
	if m := nextDayRe.FindStringSubmatchIndex(text); m != nil {
		day := weekdays[strings.ToLower(text[m[2]:m[3]])]
		return NextWeekday(ref, day), cut(text, m[:2]), true
	}
	if loc := nextWeekRe.FindStringIndex(text); loc != nil {
		return StartOfDay(ref.AddDate(0, 0, 7)), cut(text, loc), true
	}
	if m := inUnitsRe.FindStringSubmatchIndex(text); m != nil {
		amount, _ := strconv.Atoi(text[m[2]:m[3]])
		unit := strings.ToLower(text[m[4]:m[5]])
		var date time.Time
		switch {
		case strings.HasPrefix(unit, "day"):
			date = StartOfDay(ref.AddDate(0, 0, amount))
		case strings.HasPrefix(unit, "week"):
			date = StartOfDay(ref.AddDate(0, 0, amount*7))
		default:
			date = StartOfDay(ref.AddDate(0, amount, 0))
		}
		return date, cut(text, m[:2]), true
	}
	return time.Time{}, text, false
}

func extractTime(text string) (string, string, bool) {
	if loc := noonRe.FindStringIndex(text); loc != nil {
		return "12:00", cut(text, loc), true
	}
	if m := twelveRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		if hour >= 1 && hour <= 12 {
			minute := 0
			if m[4] >= 0 {
				minute, _ = strconv.Atoi(text[m[4]:m[5]])
			}
			meridiem := strings.ToLower(text[m[6]:m[7]])
			if meridiem == "pm" && hour != 12 {
				hour += 12
			}
			if meridiem == "am" && hour == 12 {
				hour = 0
			}
			return fmt.Sprintf("%02d:%02d", hour, minute), cut(text, m[:2]), true
		}
	}
	if m := clockRe.FindStringSubmatchIndex(text); m != nil {
		hour, _ := strconv.Atoi(text[m[2]:m[3]])
		minute, _ := strconv.Atoi(text[m[4]:m[5]])
		return fmt.Sprintf("%02d:%02d", hour, minute), cut(text, m[:2]), true
	}
	return "", text, false
}

// cut removes the span [loc[0], loc[1]) from text.
func cut(text string, loc []int) string {
	return text[:loc[0]] + text[loc[1]:]
}

// StartOfDay returns midnight at the start of t's day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 on t's day, in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// NextWeekday returns the start of the next occurrence of day strictly after
// t's day (a reference on a Wednesday asking for "next wednesday" lands one
// week out).
func NextWeekday(t time.Time, day time.Weekday) time.Time {
	daysUntil := int(day - t.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return StartOfDay(t.AddDate(0, 0, daysUntil))
}

// CombineDateTime applies an "HH:mm" string to a date. An empty or malformed
// time string leaves the date untouched.
func CombineDateTime(date time.Time, hhmm string) time.Time {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return date
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
