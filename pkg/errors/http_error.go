package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and a stable, client-facing code.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status, code and message.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: code, Message: message}
}

// Common errors shared by every delivery package.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "BAD_REQUEST", "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "FORBIDDEN", "forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "NOT_FOUND", "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "NOT_READY", "service not ready")
)

// AsHTTPError extracts an *HTTPError from err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
