package repository

import (
	"context"

	"task-assistant/internal/model"
)

// Repository is the data store for tasks.
// GetOne and Update return a zero-value Task (ID == "") when no row matches.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, opt DeleteOptions) error
	Ping(ctx context.Context) error
}
