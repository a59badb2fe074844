package taskapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResult is returned by sign-up and sign-in.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionInfo is the signed-in user and session.
type SessionInfo struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnmarshalJSON accepts the older is_completed name for the completion flag.
// completed wins when both are present.
func (t *Task) UnmarshalJSON(b []byte) error {
	type alias Task
	aux := struct {
		*alias
		Completed   *bool `json:"completed"`
		IsCompleted *bool `json:"is_completed"`
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	switch {
	case aux.Completed != nil:
		t.Completed = *aux.Completed
	case aux.IsCompleted != nil:
		t.Completed = *aux.IsCompleted
	default:
		t.Completed = false
	}
	return nil
}

type ChatMessage struct {
	ID             string          `json:"id"`
	SessionID      string          `json:"session_id"`
	MessageText    string          `json:"message_text"`
	Sender         string          `json:"sender"`
	IntentDetected string          `json:"intent_detected,omitempty"`
	ToolExecuted   string          `json:"tool_executed,omitempty"`
	ToolResult     json.RawMessage `json:"tool_result,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// IsAgent reports whether the assistant wrote the message.
func (m ChatMessage) IsAgent() bool {
	return m.Sender == SenderAgent
}

// ChatReply is the result of sending one message.
type ChatReply struct {
	SessionID    string      `json:"session_id"`
	Reply        string      `json:"reply"`
	UserMessage  ChatMessage `json:"user_message"`
	AgentMessage ChatMessage `json:"agent_message"`
	ToolExecuted string      `json:"tool_executed,omitempty"`
	TasksChanged bool        `json:"tasks_changed"`
}

type ChatSession struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// envelope is the server's response body.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}
