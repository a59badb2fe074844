package usecase

import (
	"context"
	"net/mail"
	"strings"

	"task-assistant/internal/auth"
	repo "task-assistant/internal/auth/repository"
	"task-assistant/internal/model"
	"task-assistant/pkg/encrypter"
	"task-assistant/pkg/scope"
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return "", auth.ErrInvalidEmail
	}
	return email, nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < auth.MinPasswordLength {
		return auth.ErrPasswordTooShort
	}
	if len(password) > encrypter.MaxPasswordBytes {
		return auth.ErrPasswordTooLong
	}
	return nil
}

func (uc *implUseCase) unknownUserHash(ctx context.Context) string {
	uc.dummyOnce.Do(func() {
		hash, err := uc.encrypter.HashPassword("unknown-user-placeholder")
		if err != nil {
			uc.l.Warnf(ctx, "auth.usecase.unknownUserHash HashPassword: %v", err)
			return
		}
		uc.dummyHash = hash
	})
	return uc.dummyHash
}

// purgeExpired drops expired session rows. Failure is logged only.
func (uc *implUseCase) purgeExpired(ctx context.Context) {
	n, err := uc.repo.DeleteExpiredSessions(ctx, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.purgeExpired DeleteExpiredSessions: %v", err)
		return
	}
	if n > 0 {
		uc.l.Debugf(ctx, "auth.usecase.purgeExpired: removed %d sessions", n)
	}
}

// issue opens a new session row for u and signs a token naming it.
// Expired sessions are purged first.
func (uc *implUseCase) issue(ctx context.Context, u model.User) (auth.AuthOutput, error) {
	uc.purgeExpired(ctx)

	sess, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		UserID:    u.ID,
		ExpiresAt: uc.now().Add(uc.sessionTTL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.issue CreateSession: %v", err)
		return auth.AuthOutput{}, err
	}

	token, err := uc.tokens.CreateToken(scope.Payload{
		UserID:    u.ID,
		Email:     u.Email,
		SessionID: sess.ID,
	}, sess.ExpiresAt.Sub(uc.now()))
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.issue CreateToken: %v", err)
		return auth.AuthOutput{}, err
	}

	return auth.AuthOutput{Token: token, User: u, Session: sess}, nil
}
