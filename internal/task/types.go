package task

import "task-assistant/internal/model"

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

type ListInput struct {
	Status model.TaskStatus
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput replaces title and description. An empty Description clears it.
type UpdateInput struct {
	ID          string
	Title       string
	Description string
}
