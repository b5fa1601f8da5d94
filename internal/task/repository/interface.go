package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"task-planner/internal/model"
)

// ErrNotFound is returned when no task exists for the given id.
var ErrNotFound = errors.New("task not found in repository")

// TaskRepository abstracts task storage. The persistence strategy is out of
// scope for the core; the in-memory implementation backs the CLI and tests.
type TaskRepository interface {
	Save(ctx context.Context, t model.Task) error
	Get(ctx context.Context, id uuid.UUID) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
}
