package repository

import (
	"encoding/json"

	"task-assistant/internal/model"
)

type GetSessionOptions struct {
	ID     string
	UserID string
}

type CreateMessageOptions struct {
	SessionID      string
	Text           string
	Sender         model.Sender
	IntentDetected string
	ToolExecuted   string
	ToolResult     json.RawMessage
}

type ListMessagesOptions struct {
	SessionID string
	Limit     int
}
