package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/model"
	"task-planner/internal/recurrence"
	"task-planner/internal/task"
	"task-planner/internal/task/repository"
)

// Complete marks a task done. When the task carries a recurrence pattern,
// the next instance is created dated at the pattern's next occurrence; a
// pattern that fails validation means the task simply cannot recur, which is
// logged but is not an error.
func (uc *implUseCase) Complete(ctx context.Context, id uuid.UUID) (task.CompleteOutput, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.CompleteOutput{}, task.ErrNotFound
		}
		return task.CompleteOutput{}, fmt.Errorf("loading task: %w", err)
	}
	if t.Completed {
		return task.CompleteOutput{}, task.ErrAlreadyCompleted
	}

	now := uc.now()
	t.Completed = true
	t.CompletedAt = &now
	t.UpdatedAt = now
	if err := uc.repo.Save(ctx, t); err != nil {
		return task.CompleteOutput{}, fmt.Errorf("saving task: %w", err)
	}

	out := task.CompleteOutput{Completed: t}
	if t.Recurrence != nil {
		if next := uc.spawnNext(ctx, t, now); next != nil {
			out.Next = next
		}
	}
	return out, nil
}

func (uc *implUseCase) spawnNext(ctx context.Context, t model.Task, completedAt time.Time) *model.Task {
	base := completedAt
	if t.DueDate != nil {
		base = *t.DueDate
	}

	nextDate, ok := recurrence.NextOccurrence(base, *t.Recurrence)
	if !ok {
		uc.l.Warnf(ctx, "task %s has an invalid recurrence pattern, not recurring", t.ID)
		return nil
	}

	next := model.Task{
		ID:              uuid.New(),
		Name:            t.Name,
		ListName:        t.ListName,
		Priority:        t.Priority,
		DueDate:         &nextDate,
		DueTime:         t.DueTime,
		EstimateMinutes: t.EstimateMinutes,
		Recurrence:      t.Recurrence,
		CreatedAt:       completedAt,
		UpdatedAt:       completedAt,
	}
	if err := uc.repo.Save(ctx, next); err != nil {
		uc.l.Errorf(ctx, "saving next instance of task %s: %v", t.ID, err)
		return nil
	}

	uc.l.Infof(ctx, "task %s recurred, next instance %s due %s", t.ID, next.ID, nextDate.Format("2006-01-02"))
	return &next
}

// Get returns a single task.
func (uc *implUseCase) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrNotFound
	}
	return t, err
}

// List returns all tasks ordered by creation time.
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	return uc.repo.List(ctx)
}
