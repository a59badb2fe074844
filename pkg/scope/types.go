package scope

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the claim set carried by a session token.
type Payload struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)
