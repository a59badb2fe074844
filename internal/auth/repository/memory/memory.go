// Package memory keeps users and auth sessions in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	repo "task-assistant/internal/auth/repository"
	"task-assistant/internal/model"
)

type implRepository struct {
	mu       sync.RWMutex
	users    map[string]model.User
	byEmail  map[string]string
	sessions map[string]model.AuthSession
	now      func() time.Time
}

func New() repo.Repository {
	return &implRepository{
		users:    make(map[string]model.User),
		byEmail:  make(map[string]string),
		sessions: make(map[string]model.AuthSession),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *implRepository) CreateUser(_ context.Context, opt repo.CreateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[opt.Email]; exists {
		return model.User{}, repo.ErrDuplicateEmail
	}

	now := r.now()
	u := model.User{
		ID:           uuid.NewString(),
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *implRepository) GetUser(_ context.Context, opt repo.GetUserOptions) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id := opt.ID
	if id == "" {
		id = r.byEmail[opt.Email]
	}
	return r.users[id], nil
}

func (r *implRepository) CreateSession(_ context.Context, opt repo.CreateSessionOptions) (model.AuthSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := model.AuthSession{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		ExpiresAt: opt.ExpiresAt.UTC(),
		CreatedAt: r.now(),
	}
	r.sessions[s.ID] = s
	return s, nil
}

func (r *implRepository) GetSession(_ context.Context, id string) (model.AuthSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}

func (r *implRepository) DeleteSession(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *implRepository) DeleteExpiredSessions(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.sessions {
		if !s.ExpiresAt.After(before) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
