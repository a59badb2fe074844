package chat

import "task-assistant/internal/model"

const (
	MaxMessageLength = 2000
	// HistoryLimit is how many earlier messages the assistant sees.
	HistoryLimit         = 20
	DefaultMessagesLimit = 100
	MaxMessagesLimit     = 500
)

// SendInput carries a user message. An empty SessionID starts a new session.
type SendInput struct {
	SessionID string
	Message   string
}

type SendOutput struct {
	SessionID    string
	Reply        string
	UserMessage  model.ChatMessage
	AgentMessage model.ChatMessage
	ToolExecuted string
	TasksChanged bool
}

type ListMessagesInput struct {
	SessionID string
	Limit     int
}
