package repository

import (
	"context"
	"time"

	"task-assistant/internal/model"
)

// Repository stores chat sessions and their messages.
// GetSession returns a zero value (ID == "") when the session does not belong to the user.
type Repository interface {
	CreateSession(ctx context.Context, userID string) (model.ChatSession, error)
	GetSession(ctx context.Context, opt GetSessionOptions) (model.ChatSession, error)
	// ListSessions returns the user's sessions, most recently updated first.
	ListSessions(ctx context.Context, userID string) ([]model.ChatSession, error)
	TouchSession(ctx context.Context, id string, at time.Time) error

	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)
	// ListMessages returns the newest Limit messages, oldest first.
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.ChatMessage, error)
}
