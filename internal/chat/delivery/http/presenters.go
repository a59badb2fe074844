package http

import (
	"encoding/json"
	"time"

	"task-assistant/internal/chat"
	"task-assistant/internal/model"
)

type sendReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{SessionID: r.SessionID, Message: r.Message}
}

type listMessagesReq struct {
	SessionID string `form:"-"`
	Limit     int    `form:"limit"`
}

func (r listMessagesReq) toInput() chat.ListMessagesInput {
	return chat.ListMessagesInput{SessionID: r.SessionID, Limit: r.Limit}
}

type messageResp struct {
	ID             string          `json:"id"`
	SessionID      string          `json:"session_id"`
	MessageText    string          `json:"message_text"`
	Sender         string          `json:"sender"`
	IntentDetected string          `json:"intent_detected,omitempty"`
	ToolExecuted   string          `json:"tool_executed,omitempty"`
	ToolResult     json.RawMessage `json:"tool_result,omitempty" swaggertype:"object"`
	CreatedAt      time.Time       `json:"created_at"`
}

type sendResp struct {
	SessionID    string      `json:"session_id"`
	Reply        string      `json:"reply"`
	UserMessage  messageResp `json:"user_message"`
	AgentMessage messageResp `json:"agent_message"`
	ToolExecuted string      `json:"tool_executed,omitempty"`
	TasksChanged bool        `json:"tasks_changed"`
}

type sessionResp struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type sessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

type messagesResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newMessageResp(m model.ChatMessage) messageResp {
	return messageResp{
		ID:             m.ID,
		SessionID:      m.SessionID,
		MessageText:    m.Text,
		Sender:         string(m.Sender),
		IntentDetected: m.IntentDetected,
		ToolExecuted:   m.ToolExecuted,
		ToolResult:     m.ToolResult,
		CreatedAt:      m.CreatedAt,
	}
}

func (h *handler) newSendResp(o chat.SendOutput) sendResp {
	return sendResp{
		SessionID:    o.SessionID,
		Reply:        o.Reply,
		UserMessage:  h.newMessageResp(o.UserMessage),
		AgentMessage: h.newMessageResp(o.AgentMessage),
		ToolExecuted: o.ToolExecuted,
		TasksChanged: o.TasksChanged,
	}
}

func (h *handler) newSessionsResp(sessions []model.ChatSession) sessionsResp {
	out := sessionsResp{Sessions: make([]sessionResp, len(sessions))}
	for i, s := range sessions {
		out.Sessions[i] = sessionResp{ID: s.ID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
	}
	return out
}

func (h *handler) newMessagesResp(msgs []model.ChatMessage) messagesResp {
	out := messagesResp{Messages: make([]messageResp, len(msgs))}
	for i, m := range msgs {
		out.Messages[i] = h.newMessageResp(m)
	}
	return out
}
