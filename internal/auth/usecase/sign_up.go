package usecase

import (
	"context"
	"errors"
	"strings"

	"task-assistant/internal/auth"
	repo "task-assistant/internal/auth/repository"
)

// SignUp registers a new account and signs it in.
func (uc *implUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.AuthOutput{}, err
	}
	if err := validatePassword(input.Password); err != nil {
		return auth.AuthOutput{}, err
	}

	existing, err := uc.repo.GetUser(ctx, repo.GetUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignUp GetUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if existing.ID != "" {
		return auth.AuthOutput{}, auth.ErrUserAlreadyExists
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignUp HashPassword: %v", err)
		return auth.AuthOutput{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return auth.AuthOutput{}, auth.ErrUserAlreadyExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignUp CreateUser: %v", err)
		return auth.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "auth.usecase.SignUp: user %s registered", u.ID)
	return uc.issue(ctx, u)
}
