package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
	"task-assistant/pkg/events"
)

// Create adds a pending task for the user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title, description, err := normalize(input.Title, input.Description)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create Create: %v", err)
		return model.Task{}, err
	}

	uc.afterMutation(ctx, sc, events.TaskCreated, t.ID)
	return t, nil
}
