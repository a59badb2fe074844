package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
	"task-assistant/pkg/events"
)

// Update replaces title and description of a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	title, description, err := normalize(input.Title, input.Description)
	if err != nil {
		return model.Task{}, err
	}

	if _, err := uc.getOwned(ctx, sc, input.ID, "Update"); err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.Update(ctx, repo.UpdateOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       &title,
		Description: &description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update Update: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.afterMutation(ctx, sc, events.TaskUpdated, t.ID)
	return t, nil
}

// Delete removes a task of the user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id, "Delete"); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, repo.DeleteOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete Delete: %v", err)
		return err
	}

	uc.afterMutation(ctx, sc, events.TaskDeleted, id)
	return nil
}
