package auth

import (
	"context"

	"task-assistant/internal/model"
)

// UseCase covers email/password accounts and their sessions.
type UseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (AuthOutput, error)
	// SignOut ends the session behind token. Unknown or expired tokens are not an error.
	SignOut(ctx context.Context, token string) error
	// GetSession returns ErrSessionNotFound when token does not name a live session.
	GetSession(ctx context.Context, token string) (SessionOutput, error)
	ResolveSession(ctx context.Context, token string) (model.Scope, error)
}
