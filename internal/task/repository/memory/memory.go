// Package memory provides an in-process TaskRepository.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"task-planner/internal/model"
	"task-planner/internal/task/repository"
)

// Repository stores tasks in a mutex-guarded map. Safe for concurrent use.
type Repository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]model.Task
}

func New() *Repository {
	return &Repository{tasks: make(map[uuid.UUID]model.Task)}
}

func (r *Repository) Save(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *Repository) List(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
