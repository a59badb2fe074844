package auth

import "task-assistant/internal/model"

const (
	MinPasswordLength = 8
)

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

type SignInInput struct {
	Email    string
	Password string
}

type AuthOutput struct {
	Token   string
	User    model.User
	Session model.AuthSession
}

type SessionOutput struct {
	User    model.User
	Session model.AuthSession
}
