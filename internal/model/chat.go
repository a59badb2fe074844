package model

import (
	"encoding/json"
	"time"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// ChatSession groups the messages of one conversation.
type ChatSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is one entry of a conversation. Agent messages may record
// the detected intent and the tool they ran.
type ChatMessage struct {
	ID             string
	SessionID      string
	Text           string
	Sender         Sender
	IntentDetected string
	ToolExecuted   string
	ToolResult     json.RawMessage
	CreatedAt      time.Time
}
