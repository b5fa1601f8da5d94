// Package quickadd parses free-text task input ("urgent Review PR in Work
// tomorrow at 3 PM") into structured fields for the task-creation flow.
//
// Parsing runs four passes over a working copy of the text — priority
// keywords, list reference, calendar phrases, residual name — and each pass
// strips what it matched before the next one runs, so the signals are
// independent of their order of appearance.
package quickadd

import (
	"regexp"
	"strings"
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
)

// ParsedInput is the structured reading of one quick-add string. Name is
// always set; every other field is zero when its signal was absent.
type ParsedInput struct {
	Name     string
	Date     *time.Time
	Time     string // "HH:mm", 24-hour
	Priority model.Priority
	ListName string
}

// priorityKeywords maps each level to its trigger phrases. Multi-word
// phrases come first so "high priority" is stripped whole rather than
// leaving a dangling "priority". Classes are checked high, then medium,
// then low; the first matching class wins even when several appear.
var priorityKeywords = []struct {
	level    model.Priority
	keywords []string
}{
	{model.PriorityHigh, []string{"high priority", "high-priority", "urgent", "asap", "critical"}},
	{model.PriorityMedium, []string{"medium priority", "medium-priority", "important"}},
	{model.PriorityLow, []string{"low priority", "low-priority", "whenever", "someday"}},
}

var priorityRes = buildPriorityRes()

func buildPriorityRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, class := range priorityKeywords {
		for _, kw := range class.keywords {
			res[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return res
}

var (
	// "in <List>": the list name needs at least one letter so that date
	// phrases like "in 3 days" are never consumed as a list reference.
	inListRe   = regexp.MustCompile(`(?i)(?:^|\s)in ([A-Za-z0-9-]*[A-Za-z][A-Za-z0-9-]*)\b`)
	hashListRe = regexp.MustCompile(`#([A-Za-z0-9-]+)\b`)
)

// Parse extracts priority, list, date and time signals from input, resolved
// against ref, and returns the leftover text as the task name. It never
// fails: unrecognized text simply stays in the name.
func Parse(input string, ref time.Time) ParsedInput {
	var out ParsedInput

	working := input
	working, out.Priority = extractPriority(working)
	working, out.ListName = extractList(working)

	ex := datemath.Extract(working, ref)
	out.Date = ex.Date
	out.Time = ex.TimeOfDay
	working = ex.Remainder

	out.Name = strings.Join(strings.Fields(working), " ")
	if out.Name == "" && strings.TrimSpace(input) != "" {
		// Everything was consumed as signals ("tomorrow" alone); keep the
		// original input as the name rather than an empty string.
		out.Name = input
	}
	return out
}

func extractPriority(text string) (string, model.Priority) {
	for _, class := range priorityKeywords {
		for _, kw := range class.keywords {
			re := priorityRes[kw]
			if loc := re.FindStringIndex(text); loc != nil {
				return text[:loc[0]] + text[loc[1]:], class.level
			}
		}
	}
	return text, ""
}

func extractList(text string) (string, string) {
	if m := inListRe.FindStringSubmatchIndex(text); m != nil {
		return text[:m[0]] + text[m[1]:], text[m[2]:m[3]]
	}
	if m := hashListRe.FindStringSubmatchIndex(text); m != nil {
		return text[:m[0]] + text[m[1]:], text[m[2]:m[3]]
	}
	return text, ""
}
