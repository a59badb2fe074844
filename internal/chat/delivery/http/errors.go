package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/chat"
	pkgErrors "task-assistant/pkg/errors"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
	errMessageRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "MESSAGE_REQUIRED", "Message is required")
	errMessageTooLong  = pkgErrors.NewHTTPError(http.StatusBadRequest, "MESSAGE_TOO_LONG", "Message must be at most 2000 characters")
	errInvalidLimit    = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 500")
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, chat.ErrInvalidLimit):
		return errInvalidLimit
	case errors.Is(err, chat.ErrSessionNotFound):
		return errSessionNotFound
	default:
		return err
	}
}
