// Package memory keeps chat sessions and messages in process memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	repo "task-assistant/internal/chat/repository"
	"task-assistant/internal/model"
)

type implRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.ChatSession
	messages map[string][]model.ChatMessage
	now      func() time.Time
}

func New() repo.Repository {
	return &implRepository{
		sessions: make(map[string]model.ChatSession),
		messages: make(map[string][]model.ChatMessage),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *implRepository) CreateSession(_ context.Context, userID string) (model.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s := model.ChatSession{ID: uuid.NewString(), UserID: userID, CreatedAt: now, UpdatedAt: now}
	r.sessions[s.ID] = s
	return s, nil
}

func (r *implRepository) GetSession(_ context.Context, opt repo.GetSessionOptions) (model.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[opt.ID]
	if !ok || s.UserID != opt.UserID {
		return model.ChatSession{}, nil
	}
	return s, nil
}

func (r *implRepository) ListSessions(_ context.Context, userID string) ([]model.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.ChatSession{}
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *implRepository) TouchSession(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.UpdatedAt = at.UTC()
		r.sessions[id] = s
	}
	return nil
}

func (r *implRepository) CreateMessage(_ context.Context, opt repo.CreateMessageOptions) (model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := model.ChatMessage{
		ID:             uuid.NewString(),
		SessionID:      opt.SessionID,
		Text:           opt.Text,
		Sender:         opt.Sender,
		IntentDetected: opt.IntentDetected,
		ToolExecuted:   opt.ToolExecuted,
		ToolResult:     opt.ToolResult,
		CreatedAt:      r.now(),
	}
	r.messages[opt.SessionID] = append(r.messages[opt.SessionID], m)
	return m, nil
}

// ListMessages relies on append order, which is creation order.
func (r *implRepository) ListMessages(_ context.Context, opt repo.ListMessagesOptions) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.messages[opt.SessionID]
	start := 0
	if opt.Limit > 0 && len(all) > opt.Limit {
		start = len(all) - opt.Limit
	}
	out := make([]model.ChatMessage, len(all)-start)
	copy(out, all[start:])
	return out, nil
}
