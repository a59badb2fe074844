package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
	"task-assistant/pkg/events"
)

// normalize trims title and description and enforces their limits.
func normalize(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return "", "", task.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > task.MaxTitleLength {
		return "", "", task.ErrTitleTooLong
	}
	if utf8.RuneCountInString(description) > task.MaxDescriptionLength {
		return "", "", task.ErrDescriptionTooLong
	}
	return title, description, nil
}

func listCacheKey(userID string, status model.TaskStatus) string {
	return "tasks:" + userID + ":" + string(status)
}

func (uc *implUseCase) generation(userID string) uint64 {
	uc.genMu.Lock()
	defer uc.genMu.Unlock()
	return uc.gens[userID]
}

// fill caches a list read at generation gen. It is skipped when a mutation
// invalidated the user's lists while the read was in flight.
func (uc *implUseCase) fill(userID string, gen uint64, key string, tasks []model.Task) {
	uc.genMu.Lock()
	defer uc.genMu.Unlock()
	if uc.gens[userID] != gen {
		return
	}
	uc.listCache.Set(key, tasks, uc.cacheTTL)
}

func (uc *implUseCase) invalidate(userID string) {
	uc.genMu.Lock()
	defer uc.genMu.Unlock()
	uc.gens[userID]++
	uc.listCache.Delete(
		listCacheKey(userID, model.TaskStatusAll),
		listCacheKey(userID, model.TaskStatusPending),
		listCacheKey(userID, model.TaskStatusCompleted),
	)
}

// afterMutation drops cached lists and publishes the activity event.
// A failed publish is logged; the mutation already succeeded.
func (uc *implUseCase) afterMutation(ctx context.Context, sc model.Scope, eventType, taskID string) {
	uc.invalidate(sc.UserID)

	err := uc.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		UserID:     sc.UserID,
		TaskID:     taskID,
		OccurredAt: uc.now().UTC(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.afterMutation Publish %s: %v", eventType, err)
	}
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id, method string) (model.Task, error) {
	t, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.%s GetOne: %v", method, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
