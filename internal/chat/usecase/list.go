package usecase

import (
	"context"
	"strings"

	"task-assistant/internal/chat"
	repo "task-assistant/internal/chat/repository"
	"task-assistant/internal/model"
)

// ListSessions returns the user's sessions, most recently active first.
func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope) ([]model.ChatSession, error) {
	sessions, err := uc.repo.ListSessions(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ListSessions ListSessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

// ListMessages returns the newest messages of a session, oldest first.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input chat.ListMessagesInput) ([]model.ChatMessage, error) {
	limit := input.Limit
	switch {
	case limit == 0:
		limit = chat.DefaultMessagesLimit
	case limit < 0 || limit > chat.MaxMessagesLimit:
		return nil, chat.ErrInvalidLimit
	}

	session, err := uc.getOwnedSession(ctx, sc, strings.TrimSpace(input.SessionID), "ListMessages")
	if err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{SessionID: session.ID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ListMessages ListMessages: %v", err)
		return nil, err
	}
	return msgs, nil
}

func (uc *implUseCase) getOwnedSession(ctx context.Context, sc model.Scope, id, method string) (model.ChatSession, error) {
	s, err := uc.repo.GetSession(ctx, repo.GetSessionOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.%s GetSession: %v", method, err)
		return model.ChatSession{}, err
	}
	if s.ID == "" {
		return model.ChatSession{}, chat.ErrSessionNotFound
	}
	return s, nil
}
