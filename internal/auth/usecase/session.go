package usecase

import (
	"context"

	"task-assistant/internal/auth"
	repo "task-assistant/internal/auth/repository"
	"task-assistant/internal/model"
)

// GetSession resolves token to its live session and user.
func (uc *implUseCase) GetSession(ctx context.Context, token string) (auth.SessionOutput, error) {
	if token == "" {
		return auth.SessionOutput{}, auth.ErrSessionNotFound
	}

	payload, err := uc.tokens.Verify(token)
	if err != nil {
		return auth.SessionOutput{}, auth.ErrSessionNotFound
	}

	sess, err := uc.repo.GetSession(ctx, payload.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.GetSession GetSession: %v", err)
		return auth.SessionOutput{}, err
	}
	if sess.ID == "" || sess.UserID != payload.UserID || !sess.ExpiresAt.After(uc.now()) {
		return auth.SessionOutput{}, auth.ErrSessionNotFound
	}

	u, err := uc.repo.GetUser(ctx, repo.GetUserOptions{ID: sess.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.GetSession GetUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if u.ID == "" {
		return auth.SessionOutput{}, auth.ErrSessionNotFound
	}

	return auth.SessionOutput{User: u, Session: sess}, nil
}

// ResolveSession turns a token into the request Scope.
func (uc *implUseCase) ResolveSession(ctx context.Context, token string) (model.Scope, error) {
	out, err := uc.GetSession(ctx, token)
	if err != nil {
		return model.Scope{}, err
	}
	return model.Scope{
		UserID:    out.User.ID,
		Email:     out.User.Email,
		SessionID: out.Session.ID,
	}, nil
}
