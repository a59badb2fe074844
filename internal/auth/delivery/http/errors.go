package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/auth"
	pkgErrors "task-assistant/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
	errInvalidEmail       = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_EMAIL", "Invalid email")
	errPasswordTooShort   = pkgErrors.NewHTTPError(http.StatusBadRequest, "PASSWORD_TOO_SHORT", "Password must be at least 8 characters")
	errPasswordTooLong    = pkgErrors.NewHTTPError(http.StatusBadRequest, "PASSWORD_TOO_LONG", "Password must be at most 72 bytes")
	errUserAlreadyExists  = pkgErrors.NewHTTPError(http.StatusConflict, "USER_ALREADY_EXISTS", "User already exists")
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "INVALID_EMAIL_OR_PASSWORD", "Invalid email or password")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, auth.ErrPasswordTooShort):
		return errPasswordTooShort
	case errors.Is(err, auth.ErrPasswordTooLong):
		return errPasswordTooLong
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return errUserAlreadyExists
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials
	default:
		return err
	}
}
