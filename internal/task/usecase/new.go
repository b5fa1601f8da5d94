package usecase

import (
	"time"

	"task-planner/internal/quickadd"
	"task-planner/internal/task/repository"
	pkgLog "task-planner/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.TaskRepository
	parser *quickadd.CachedParser
	now    func() time.Time
}

// New creates a new task UseCase instance. now may be nil, in which case the
// wall clock is used.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	parser *quickadd.CachedParser,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		parser: parser,
		now:    now,
	}
}
