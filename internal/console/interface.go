package console

import (
	"context"

	"task-assistant/pkg/taskapi"
)

// TaskAPI is the part of the API the task screens use. *taskapi.Client implements it.
type TaskAPI interface {
	ListTasks(ctx context.Context, status string) ([]taskapi.Task, error)
	CreateTask(ctx context.Context, title, description string) (taskapi.Task, error)
	UpdateTask(ctx context.Context, id, title, description string) (taskapi.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (taskapi.Task, error)
}

// ChatAPI is the part of the API the chat screen uses. *taskapi.Client implements it.
type ChatAPI interface {
	SendChat(ctx context.Context, message, sessionID string) (taskapi.ChatReply, error)
}

var (
	_ TaskAPI = (*taskapi.Client)(nil)
	_ ChatAPI = (*taskapi.Client)(nil)
)
