package task

import (
	"context"

	"github.com/google/uuid"

	"task-planner/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses raw quick-add text, validates and normalizes any
	// recurrence pattern, and stores the new task.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Complete marks a task done. A recurring task spawns its next instance
	// dated at the pattern's next occurrence.
	Complete(ctx context.Context, id uuid.UUID) (CompleteOutput, error)

	// Get returns a single task.
	Get(ctx context.Context, id uuid.UUID) (model.Task, error)

	// List returns all tasks.
	List(ctx context.Context) ([]model.Task, error)
}
