// Package scheduler proposes and ranks candidate time slots for a task
// against existing commitments. All inputs are explicit — the clock is
// injected and busy intervals come from a provider — so scoring is
// deterministic and testable.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
	pkgLog "task-planner/pkg/log"
)

const (
	// DefaultSuggestionCount is used when the caller asks for zero slots.
	DefaultSuggestionCount = 5

	// MaxSuggestionCount bounds a single suggestion request.
	MaxSuggestionCount = 20

	defaultEstimateMinutes = 30
)

// ErrInvalidCount is returned for a requested count outside [1,20].
var ErrInvalidCount = errors.New("suggestion count must be between 1 and 20")

// Interval is a committed half-open time span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Suggestion is one ranked candidate slot.
type Suggestion struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int // 0-100
	Reason    string
}

// BusyProvider supplies committed intervals inside a window. Implementations
// include StaticBusyProvider and the Google Calendar adapter in
// pkg/gcalendar.
type BusyProvider interface {
	BusyIntervals(ctx context.Context, from, to time.Time) ([]Interval, error)
}

// BusyProviderFunc adapts a plain function to BusyProvider.
type BusyProviderFunc func(ctx context.Context, from, to time.Time) ([]Interval, error)

func (f BusyProviderFunc) BusyIntervals(ctx context.Context, from, to time.Time) ([]Interval, error) {
	return f(ctx, from, to)
}

// StaticBusyProvider serves a fixed set of intervals. Used in tests and
// when no calendar is connected.
type StaticBusyProvider struct {
	Intervals []Interval
}

func (p *StaticBusyProvider) BusyIntervals(ctx context.Context, from, to time.Time) ([]Interval, error) {
	window := Interval{Start: from, End: to}
	var out []Interval
	for _, iv := range p.Intervals {
		if iv.Overlaps(window) {
			out = append(out, iv)
		}
	}
	return out, nil
}

// Options tune candidate slot generation.
type Options struct {
	WorkdayStartHour int // first slot of the day, default 9
	WorkdayEndHour   int // slots must end by this hour, default 17
	SlotStepMinutes  int // candidate start spacing, default 30
	LookaheadDays    int // scan window from now, default 7
}

func (o Options) withDefaults() Options {
	if o.WorkdayStartHour == 0 && o.WorkdayEndHour == 0 {
		o.WorkdayStartHour, o.WorkdayEndHour = 9, 17
	}
	if o.SlotStepMinutes <= 0 {
		o.SlotStepMinutes = 30
	}
	if o.LookaheadDays <= 0 {
		o.LookaheadDays = 7
	}
	return o
}

// Engine scores candidate slots for tasks.
type Engine struct {
	l    pkgLog.Logger
	busy BusyProvider
	opts Options
	now  func() time.Time
}

// New builds an Engine. busy may be nil (no commitments); now may be nil,
// in which case the engine reads the wall clock.
func New(l pkgLog.Logger, busy BusyProvider, opts Options, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{l: l, busy: busy, opts: opts.withDefaults(), now: now}
}

// SuggestSlots proposes up to count candidate slots for the task within the
// look-ahead window, scored 0-100 and sorted by descending score with ties
// broken by earliest start. count zero means DefaultSuggestionCount; any
// other value outside [1,20] is rejected. Fewer (possibly zero) suggestions
// are returned when the window has too little free room; an empty result is
// not an error.
func (e *Engine) SuggestSlots(ctx context.Context, task model.Task, count int) ([]Suggestion, error) {
	if count == 0 {
		count = DefaultSuggestionCount
	}
	if count < 1 || count > MaxSuggestionCount {
		return nil, ErrInvalidCount
	}

	duration := time.Duration(task.EstimateMinutes) * time.Minute
	if duration <= 0 {
		duration = defaultEstimateMinutes * time.Minute
	}

	now := e.now()
	windowEnd := now.AddDate(0, 0, e.opts.LookaheadDays)

	var busy []Interval
	if e.busy != nil {
		intervals, err := e.busy.BusyIntervals(ctx, now, windowEnd)
		if err != nil {
			return nil, fmt.Errorf("fetching busy intervals: %w", err)
		}
		busy = intervals
	}

	deadline := task.Deadline()
	candidates := e.collectCandidates(now, duration, busy, deadline, task.Priority)
	e.l.Debugf(ctx, "scored %d candidate slots for task %q", len(candidates), task.Name)

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].StartTime.Before(candidates[j].StartTime)
	})

	// Keep the best slots that do not overlap one another.
	var out []Suggestion
	for _, c := range candidates {
		if len(out) == count {
			break
		}
		slot := Interval{Start: c.StartTime, End: c.EndTime}
		clashes := false
		for _, chosen := range out {
			if slot.Overlaps(Interval{Start: chosen.StartTime, End: chosen.EndTime}) {
				clashes = true
				break
			}
		}
		if !clashes {
			out = append(out, c)
		}
	}
	return out, nil
}

func (e *Engine) collectCandidates(now time.Time, duration time.Duration, busy []Interval, deadline *time.Time, priority model.Priority) []Suggestion {
	step := time.Duration(e.opts.SlotStepMinutes) * time.Minute

	var candidates []Suggestion
	for dayOffset := 0; dayOffset < e.opts.LookaheadDays; dayOffset++ {
		day := datemath.StartOfDay(now.AddDate(0, 0, dayOffset))
		dayEnd := day.Add(time.Duration(e.opts.WorkdayEndHour) * time.Hour)

		for start := day.Add(time.Duration(e.opts.WorkdayStartHour) * time.Hour); ; start = start.Add(step) {
			end := start.Add(duration)
			if end.After(dayEnd) {
				break
			}
			if !start.After(now) {
				continue
			}
			if deadline != nil && end.After(*deadline) {
				continue // too late to be useful
			}
			if overlapsAny(Interval{Start: start, End: end}, busy) {
				continue
			}
			score, reason := e.scoreSlot(now, start, end, deadline, priority)
			candidates = append(candidates, Suggestion{
				StartTime: start,
				EndTime:   end,
				Score:     score,
				Reason:    reason,
			})
		}
	}
	return candidates
}

func overlapsAny(slot Interval, busy []Interval) bool {
	for _, iv := range busy {
		if slot.Overlaps(iv) {
			return true
		}
	}
	return false
}

// scoreSlot combines proximity to now, weighted up for high-priority tasks,
// with the margin left before an explicit deadline.
func (e *Engine) scoreSlot(now, start, end time.Time, deadline *time.Time, priority model.Priority) (int, string) {
	score := 50
	reason := "Free slot on " + start.Format("Mon, Jan 2 at 15:04")

	weight := 30.0
	switch priority {
	case model.PriorityHigh:
		weight = 40
	case model.PriorityLow:
		weight = 20
	}

	windowHours := float64(e.opts.LookaheadDays) * 24
	closeness := 1 - start.Sub(now).Hours()/windowHours
	if closeness < 0 {
		closeness = 0
	}
	score += int(closeness * weight)

	if deadline != nil {
		if margin := deadline.Sub(end); margin >= 24*time.Hour {
			score += 10
			reason += ", comfortably before the deadline"
		} else {
			score += 5
			reason += ", just before the deadline"
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, reason
}
