package chat

import (
	"context"

	"task-assistant/internal/model"
)

// UseCase runs the assistant conversation of one user.
type UseCase interface {
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
	ListSessions(ctx context.Context, sc model.Scope) ([]model.ChatSession, error)
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) ([]model.ChatMessage, error)
}
