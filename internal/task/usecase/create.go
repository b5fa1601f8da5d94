package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"task-planner/internal/model"
	"task-planner/internal/recurrence"
	"task-planner/internal/task"
)

// Create parses quick-add text into a task, validates and normalizes the
// recurrence pattern if one was supplied, and stores the result.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	now := uc.now()
	parsed := uc.parser.Parse(input.RawText, now)

	t := model.Task{
		ID:              uuid.New(),
		Name:            parsed.Name,
		ListName:        parsed.ListName,
		Priority:        model.PriorityNone,
		DueDate:         parsed.Date,
		DueTime:         parsed.Time,
		EstimateMinutes: input.Estimate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if parsed.Priority != "" {
		t.Priority = parsed.Priority
	}

	if input.Recurrence != nil {
		normalized, err := recurrence.Normalize(*input.Recurrence)
		if err != nil {
			return task.CreateOutput{}, fmt.Errorf("normalizing recurrence: %w", err)
		}
		t.Recurrence = &normalized
	}

	if err := uc.repo.Save(ctx, t); err != nil {
		return task.CreateOutput{}, fmt.Errorf("saving task: %w", err)
	}

	uc.l.Infof(ctx, "created task %s (%q)", t.ID, t.Name)
	return task.CreateOutput{Task: t}, nil
}
