package events

import (
	"context"
	"time"
)

// Event types. The type is also the subject suffix on the bus.
const (
	TaskCreated = "tasks.created"
	TaskUpdated = "tasks.updated"
	TaskDeleted = "tasks.deleted"
	TaskToggled = "tasks.toggled"
	ChatMessage = "chat.message"
)

// Event is an activity record published after a successful mutation.
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	TaskID     string    `json:"task_id,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	Tool       string    `json:"tool,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher sends activity events.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// Handler processes one delivered event. A returned error asks for redelivery.
type Handler func(ctx context.Context, evt Event) error

// Config configures the NATS JetStream bus.
type Config struct {
	URL           string
	Stream        string
	SubjectPrefix string
}
