package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
	"task-assistant/pkg/events"
)

// Toggle flips the completion flag.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.getOwned(ctx, sc, id, "Toggle")
	if err != nil {
		return model.Task{}, err
	}
	return uc.setCompleted(ctx, sc, id, !existing.Completed, "Toggle")
}

// Complete marks a task completed. Completing a completed task is a no-op success.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.getOwned(ctx, sc, id, "Complete")
	if err != nil {
		return model.Task{}, err
	}
	if existing.Completed {
		return existing, nil
	}
	return uc.setCompleted(ctx, sc, id, true, "Complete")
}

func (uc *implUseCase) setCompleted(ctx context.Context, sc model.Scope, id string, completed bool, method string) (model.Task, error) {
	t, err := uc.repo.Update(ctx, repo.UpdateOptions{
		ID:        id,
		UserID:    sc.UserID,
		Completed: &completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.%s Update: %v", method, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.afterMutation(ctx, sc, events.TaskToggled, t.ID)
	return t, nil
}
