package chat

import "errors"

var (
	ErrMessageRequired = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message too long")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrInvalidLimit    = errors.New("invalid limit")
)
