// Package memory is an in-process task store for the memory storage driver and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

type entry struct {
	task model.Task
	seq  uint64
}

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]entry
	seq   uint64
	now   func() time.Time
}

// New creates an empty in-memory task repository.
func New() repo.Repository {
	return &implRepository{
		tasks: make(map[string]entry),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *implRepository) Create(_ context.Context, opt repo.CreateOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.seq++
	t := model.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[t.ID] = entry{task: t, seq: r.seq}
	return t, nil
}

func (r *implRepository) GetOne(_ context.Context, opt repo.GetOneOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tasks[opt.ID]
	if !ok || e.task.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return e.task, nil
}

func (r *implRepository) List(_ context.Context, opt repo.ListOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entry, 0)
	for _, e := range r.tasks {
		if e.task.UserID == opt.UserID && opt.Status.Matches(e.task) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	tasks := make([]model.Task, len(matched))
	for i, e := range matched {
		tasks[i] = e.task
	}
	return tasks, nil
}

func (r *implRepository) Update(_ context.Context, opt repo.UpdateOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.tasks[opt.ID]
	if !ok || e.task.UserID != opt.UserID {
		return model.Task{}, nil
	}
	if opt.Title != nil {
		e.task.Title = *opt.Title
	}
	if opt.Description != nil {
		e.task.Description = *opt.Description
	}
	if opt.Completed != nil {
		e.task.Completed = *opt.Completed
	}
	e.task.UpdatedAt = r.now()
	r.tasks[opt.ID] = e
	return e.task, nil
}

func (r *implRepository) Delete(_ context.Context, opt repo.DeleteOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.tasks[opt.ID]; ok && e.task.UserID == opt.UserID {
		delete(r.tasks, opt.ID)
	}
	return nil
}

func (r *implRepository) Ping(context.Context) error {
	return nil
}
