package repository

import "task-assistant/internal/model"

type CreateOptions struct {
	UserID      string
	Title       string
	Description string
}

// GetOneOptions matches a task by id within one user's tasks.
type GetOneOptions struct {
	ID     string
	UserID string
}

// ListOptions lists one user's tasks, oldest first.
type ListOptions struct {
	UserID string
	Status model.TaskStatus
}

// UpdateOptions changes the non-nil fields.
type UpdateOptions struct {
	ID          string
	UserID      string
	Title       *string
	Description *string
	Completed   *bool
}

type DeleteOptions struct {
	ID     string
	UserID string
}
