package agent

import (
	"context"

	"task-assistant/internal/model"
)

// Reply is the assistant's answer to one user message.
type Reply struct {
	Text         string
	Intent       string
	ToolExecuted string
	ToolResult   *Result
	TasksChanged bool
}

// Responder answers a user message given the earlier conversation, oldest first.
type Responder interface {
	Respond(ctx context.Context, history []model.ChatMessage, message string) (Reply, error)
}
