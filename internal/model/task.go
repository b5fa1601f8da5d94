package model

import (
	"time"

	"github.com/google/uuid"

	"task-planner/internal/recurrence"
	"task-planner/pkg/datemath"
)

// Priority is the task urgency level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// Valid reports whether p is one of the four known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// Task is a planner item. A task with a Recurrence pattern spawns its next
// instance when completed.
type Task struct {
	ID              uuid.UUID
	Name            string
	ListName        string
	Priority        Priority
	DueDate         *time.Time // start of day when set without a time
	DueTime         string     // "HH:mm", empty for all-day tasks
	EstimateMinutes int
	Recurrence      *recurrence.Pattern
	Completed       bool
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Deadline resolves the task's due date and time into a single instant: the
// due time on the due date, or end of day for all-day tasks. Nil when the
// task has no due date.
func (t Task) Deadline() *time.Time {
	if t.DueDate == nil {
		return nil
	}
	if t.DueTime != "" {
		d := datemath.CombineDateTime(*t.DueDate, t.DueTime)
		return &d
	}
	d := datemath.EndOfDay(*t.DueDate)
	return &d
}
