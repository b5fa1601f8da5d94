package task

import (
	"task-planner/internal/model"
	"task-planner/internal/recurrence"
)

// CreateInput is the input for quick-add task creation.
type CreateInput struct {
	RawText    string // free text, parsed for date/time/priority/list signals
	Recurrence *recurrence.Pattern
	Estimate   int // minutes, optional
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task model.Task
}

// CompleteOutput is the result of completing a task. Next is the freshly
// spawned instance when the completed task was recurring, nil otherwise.
type CompleteOutput struct {
	Completed model.Task
	Next      *model.Task
}
