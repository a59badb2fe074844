package repository

import "time"

type CreateUserOptions struct {
	Email        string
	Name         string
	PasswordHash string
}

// GetUserOptions matches by ID or by Email; ID wins when both are set.
type GetUserOptions struct {
	ID    string
	Email string
}

type CreateSessionOptions struct {
	UserID    string
	ExpiresAt time.Time
}
