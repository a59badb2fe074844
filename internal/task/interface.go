package task

import (
	"context"

	"task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every operation acts on the tasks of sc.UserID only.
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)
}
