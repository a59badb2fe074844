package repository

import (
	"context"
	"time"

	"task-assistant/internal/model"
)

// Repository stores users and their sessions.
// Getters return a zero value (ID == "") when nothing matches.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUser(ctx context.Context, opt GetUserOptions) (model.User, error)

	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.AuthSession, error)
	GetSession(ctx context.Context, id string) (model.AuthSession, error)
	DeleteSession(ctx context.Context, id string) error
	// DeleteExpiredSessions removes sessions that expired at or before before
	// and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}
