package taskapi

import (
	"errors"
	"fmt"
)

// Server error codes the client reacts to.
const (
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeRateLimited            = "RATE_LIMITED"
	CodeInvalidEmail           = "INVALID_EMAIL"
	CodePasswordTooShort       = "PASSWORD_TOO_SHORT"
	CodePasswordTooLong        = "PASSWORD_TOO_LONG"
	CodeUserAlreadyExists      = "USER_ALREADY_EXISTS"
	CodeInvalidEmailOrPassword = "INVALID_EMAIL_OR_PASSWORD"
	CodeTaskNotFound           = "TASK_NOT_FOUND"
	CodeSessionNotFound        = "SESSION_NOT_FOUND"
	CodeMessageRequired        = "MESSAGE_REQUIRED"
	CodeMessageTooLong         = "MESSAGE_TOO_LONG"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsUnauthorized reports whether the server rejected the session.
func IsUnauthorized(err error) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.Code == CodeUnauthorized
}

var authMessages = map[string]string{
	CodeInvalidEmailOrPassword: "Invalid email or password",
	CodeUserAlreadyExists:      "An account with this email already exists",
	CodeInvalidEmail:           "Please enter a valid email address",
	CodePasswordTooShort:       "Password must be at least 8 characters",
	CodePasswordTooLong:        "Password is too long",
	CodeRateLimited:            "Too many attempts. Please wait a moment and try again",
	CodeUnauthorized:           "Your session has expired. Please sign in again",
}

// AuthErrorMessage turns an auth call failure into a display string.
// Unknown codes and transport errors fall back to their own message.
func AuthErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if ae, ok := AsAPIError(err); ok {
		if msg, ok := authMessages[ae.Code]; ok {
			return msg
		}
		if ae.Message != "" {
			return ae.Message
		}
	}
	return err.Error()
}

// ChatErrorMessage turns a chat send failure into a display string.
func ChatErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	ae, ok := AsAPIError(err)
	if !ok {
		return "Failed to send message: " + err.Error()
	}
	switch ae.Code {
	case CodeUnauthorized:
		return authMessages[CodeUnauthorized]
	case CodeRateLimited:
		return "You're sending messages too quickly. Please wait a moment"
	case CodeMessageTooLong:
		return "Message is too long"
	case CodeSessionNotFound:
		return "This conversation no longer exists. Start a new one"
	}
	if ae.Message != "" {
		return ae.Message
	}
	return "Failed to send message"
}
