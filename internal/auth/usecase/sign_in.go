package usecase

import (
	"context"

	"task-assistant/internal/auth"
	repo "task-assistant/internal/auth/repository"
)

// SignIn checks the credentials and opens a new session.
// Unknown email and wrong password yield the same error.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	u, err := uc.repo.GetUser(ctx, repo.GetUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignIn GetUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if u.ID == "" {
		_ = uc.encrypter.ComparePassword(uc.unknownUserHash(ctx), input.Password)
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	if err := uc.encrypter.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	return uc.issue(ctx, u)
}

// SignOut deletes the session row so the token stops resolving.
func (uc *implUseCase) SignOut(ctx context.Context, token string) error {
	payload, err := uc.tokens.Verify(token)
	if err != nil {
		return nil
	}
	if err := uc.repo.DeleteSession(ctx, payload.SessionID); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignOut DeleteSession: %v", err)
		return err
	}
	return nil
}
