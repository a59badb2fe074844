package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// List returns the user's tasks oldest first, served from the list cache when warm.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	status, ok := model.ParseTaskStatus(string(input.Status))
	if !ok {
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	key := listCacheKey(sc.UserID, status)
	if cached, hit := uc.listCache.Get(key); hit {
		tasks := make([]model.Task, len(cached))
		copy(tasks, cached)
		return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
	}

	gen := uc.generation(sc.UserID)
	tasks, err := uc.repo.List(ctx, repo.ListOptions{UserID: sc.UserID, Status: status})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List List: %v", err)
		return task.ListOutput{}, err
	}

	stored := make([]model.Task, len(tasks))
	copy(stored, tasks)
	uc.fill(sc.UserID, gen, key, stored)

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Detail returns one task of the user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.getOwned(ctx, sc, id, "Detail")
}
