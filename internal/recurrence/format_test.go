package recurrence_test

import (
	"reflect"
	"testing"

	"task-planner/internal/recurrence"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		pattern recurrence.Pattern
		want    string
	}{
		{"Daily", recurrence.NewDaily(1), "Every day"},
		{"Daily interval", recurrence.NewDaily(3), "Every 3 days"},
		{"Weekly", recurrence.NewWeekly(1), "Every week"},
		{"Weekly interval", recurrence.NewWeekly(2), "Every 2 weeks"},
		{"Monthly", recurrence.NewMonthly(1), "Every month"},
		{"Monthly interval", recurrence.NewMonthly(6), "Every 6 months"},
		{"Yearly", recurrence.NewYearly(1), "Every year"},
		{"Yearly interval", recurrence.NewYearly(2), "Every 2 years"},
		{"Weekday", recurrence.NewWeekday(), "Every weekday"},
		{"Single weekday uses full name", recurrence.NewWeekdaySet([]int{1}), "Every Monday"},
		{"Two weekdays", recurrence.NewWeekdaySet([]int{1, 3}), "Every Mon and Wed"},
		{"Three weekdays with Oxford comma", recurrence.NewWeekdaySet([]int{1, 3, 5}), "Every Mon, Wed, and Fri"},
		{"Unsorted input weekdays", recurrence.NewWeekdaySet([]int{5, 1, 3}), "Every Mon, Wed, and Fri"},
		{"Ordinal weekday", recurrence.NewOrdinalWeekday(3, 2), "Every 3rd Tuesday of the month"},
		{"First Sunday", recurrence.NewOrdinalWeekday(1, 0), "Every 1st Sunday of the month"},
		{
			name: "Ordinal weekday with interval",
			pattern: func() recurrence.Pattern {
				p := recurrence.NewOrdinalWeekday(2, 4)
				p.Interval = intPtr(3)
				return p
			}(),
			want: "Every 2nd Thursday of the month every 3 months",
		},
		{"Month day", recurrence.NewMonthDay(15), "Every 15th of the month"},
		{"Month day first", recurrence.NewMonthDay(1), "Every 1st of the month"},
		{"Month day 22nd", recurrence.NewMonthDay(22), "Every 22nd of the month"},
		{"Month day 23rd", recurrence.NewMonthDay(23), "Every 23rd of the month"},
		{"Month day 11th stays th", recurrence.NewMonthDay(11), "Every 11th of the month"},
		{"Month day 13th stays th", recurrence.NewMonthDay(13), "Every 13th of the month"},
		{
			name: "Month day with interval",
			pattern: func() recurrence.Pattern {
				p := recurrence.NewMonthDay(5)
				p.Interval = intPtr(2)
				return p
			}(),
			want: "Every 5th of the month every 2 months",
		},
		{
			name:    "Custom bare interval",
			pattern: recurrence.Pattern{Type: recurrence.TypeCustom, Interval: intPtr(4)},
			want:    "Every 4 days",
		},
		{"Invalid type", recurrence.Pattern{Type: "hourly"}, "Invalid recurrence pattern"},
		{"Invalid interval", recurrence.NewDaily(-1), "Invalid recurrence pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recurrence.Format(tt.pattern); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormatted(t *testing.T) {
	tests := []struct {
		name string
		text string
		want recurrence.Pattern
		ok   bool
	}{
		{"Every day", "Every day", recurrence.NewDaily(1), true},
		{"Case insensitive", "eVeRy WeEk", recurrence.NewWeekly(1), true},
		{"Interval phrase", "every 3 days", recurrence.NewDaily(3), true},
		{"Every weekday", "Every weekday", recurrence.NewWeekday(), true},
		{"Single weekday", "every monday", recurrence.NewWeekdaySet([]int{1}), true},
		{"Abbreviated pair", "Every Mon and Wed", recurrence.NewWeekdaySet([]int{1, 3}), true},
		{"Oxford list", "Every Mon, Wed, and Fri", recurrence.NewWeekdaySet([]int{1, 3, 5}), true},
		{"Ordinal weekday", "Every 3rd Tuesday of the month", recurrence.NewOrdinalWeekday(3, 2), true},
		{"Month day", "Every 15th of the month", recurrence.NewMonthDay(15), true},
		{
			name: "Month day with interval",
			text: "Every 5th of the month every 2 months",
			want: func() recurrence.Pattern {
				p := recurrence.NewMonthDay(5)
				p.Interval = intPtr(2)
				return p
			}(),
			ok: true,
		},
		{"Surrounding whitespace", "  every year  ", recurrence.NewYearly(1), true},
		{"Unrecognized text", "whenever I feel like it", recurrence.Pattern{}, false},
		{"Missing every prefix", "3rd Tuesday of the month", recurrence.Pattern{}, false},
		{"Ordinal out of range rejected", "Every 9th Monday of the month", recurrence.Pattern{}, false},
		{"Empty string", "", recurrence.Pattern{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := recurrence.ParseFormatted(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseFormatted(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormatted(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

// ival is the effective interval with the default applied.
func ival(p recurrence.Pattern) int {
	if p.Interval != nil {
		return *p.Interval
	}
	return 1
}

func TestFormatParseRoundTrip(t *testing.T) {
	patterns := map[string]recurrence.Pattern{
		"daily":           recurrence.NewDaily(1),
		"daily 4":         recurrence.NewDaily(4),
		"weekly":          recurrence.NewWeekly(1),
		"weekly 2":        recurrence.NewWeekly(2),
		"weekday":         recurrence.NewWeekday(),
		"monthly":         recurrence.NewMonthly(1),
		"monthly 3":       recurrence.NewMonthly(3),
		"yearly":          recurrence.NewYearly(1),
		"single weekday":  recurrence.NewWeekdaySet([]int{2}),
		"weekday pair":    recurrence.NewWeekdaySet([]int{0, 6}),
		"weekday trio":    recurrence.NewWeekdaySet([]int{1, 3, 5}),
		"month day":       recurrence.NewMonthDay(21),
		"ordinal weekday": recurrence.NewOrdinalWeekday(2, 4),
	}

	for name, p := range patterns {
		t.Run(name, func(t *testing.T) {
			phrase := recurrence.Format(p)
			got, ok := recurrence.ParseFormatted(phrase)
			if !ok {
				t.Fatalf("ParseFormatted(%q) did not recognize Format output", phrase)
			}
			if got.Type != p.Type {
				t.Fatalf("round trip type = %s, want %s (phrase %q)", got.Type, p.Type, phrase)
			}
			if ival(got) != ival(p) {
				t.Errorf("round trip interval = %d, want %d (phrase %q)", ival(got), ival(p), phrase)
			}
			if !reflect.DeepEqual(got.Weekdays, p.Weekdays) {
				t.Errorf("round trip weekdays = %v, want %v (phrase %q)", got.Weekdays, p.Weekdays, phrase)
			}
			if (got.MonthDay == nil) != (p.MonthDay == nil) ||
				(got.MonthDay != nil && *got.MonthDay != *p.MonthDay) {
				t.Errorf("round trip monthDay mismatch (phrase %q)", phrase)
			}
			if (got.Ordinal == nil) != (p.Ordinal == nil) ||
				(got.Ordinal != nil && (*got.Ordinal != *p.Ordinal || *got.OrdinalWeekday != *p.OrdinalWeekday)) {
				t.Errorf("round trip ordinal pair mismatch (phrase %q)", phrase)
			}
		})
	}
}
