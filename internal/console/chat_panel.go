package console

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"task-assistant/pkg/taskapi"
)

// ChatPanel holds one conversation with the assistant.
// The first successful send fixes the session id for every later send.
type ChatPanel struct {
	api ChatAPI

	// OnTasksChanged runs after a reply whose tool call changed tasks.
	OnTasksChanged func(ctx context.Context)

	mu        sync.RWMutex
	messages  []taskapi.ChatMessage
	sessionID string
	loading   bool
	errMsg    string
	localSeq  int
	now       func() time.Time
}

func NewChatPanel(api ChatAPI) *ChatPanel {
	return &ChatPanel{api: api, now: time.Now}
}

// Resume continues an existing session with its stored history.
func (p *ChatPanel) Resume(sessionID string, history []taskapi.ChatMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessionID = sessionID
	p.messages = append([]taskapi.ChatMessage(nil), history...)
}

// Messages returns the conversation, oldest first.
func (p *ChatPanel) Messages() []taskapi.ChatMessage {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]taskapi.ChatMessage, len(p.messages))
	copy(out, p.messages)
	return out
}

func (p *ChatPanel) SessionID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sessionID
}

func (p *ChatPanel) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Error is the display string of the last failed send, empty otherwise.
func (p *ChatPanel) Error() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.errMsg
}

func (p *ChatPanel) DismissError() {
	p.mu.Lock()
	p.errMsg = ""
	p.mu.Unlock()
}

// Send posts text with the current session id. The user's message shows
// immediately and is replaced by the stored copy once the reply arrives;
// on failure it is removed and Error holds the reason.
func (p *ChatPanel) Send(ctx context.Context, text string) (taskapi.ChatReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return taskapi.ChatReply{}, ErrEmptyMessage
	}

	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return taskapi.ChatReply{}, ErrBusy
	}
	p.loading = true
	p.localSeq++
	localID := "local-" + strconv.Itoa(p.localSeq)
	p.messages = append(p.messages, taskapi.ChatMessage{
		ID:          localID,
		SessionID:   p.sessionID,
		MessageText: text,
		Sender:      taskapi.SenderUser,
		CreatedAt:   p.now(),
	})
	sessionID := p.sessionID
	p.mu.Unlock()

	reply, err := p.api.SendChat(ctx, text, sessionID)

	p.mu.Lock()
	p.loading = false
	idx := p.indexOf(localID)
	if err != nil {
		if idx >= 0 {
			p.messages = append(p.messages[:idx], p.messages[idx+1:]...)
		}
		p.errMsg = taskapi.ChatErrorMessage(err)
		p.mu.Unlock()
		return taskapi.ChatReply{}, err
	}

	if p.sessionID == "" {
		p.sessionID = reply.SessionID
	}
	if idx >= 0 && reply.UserMessage.ID != "" {
		p.messages[idx] = reply.UserMessage
	}
	agentMsg := reply.AgentMessage
	if agentMsg.ID == "" {
		agentMsg = taskapi.ChatMessage{
			SessionID:   reply.SessionID,
			MessageText: reply.Reply,
			Sender:      taskapi.SenderAgent,
			CreatedAt:   p.now(),
		}
	}
	p.messages = append(p.messages, agentMsg)
	p.errMsg = ""
	p.mu.Unlock()

	if reply.TasksChanged && p.OnTasksChanged != nil {
		p.OnTasksChanged(ctx)
	}
	return reply, nil
}

func (p *ChatPanel) indexOf(id string) int {
	for i, m := range p.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}
