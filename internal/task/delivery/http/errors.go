package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/task"
	pkgErrors "task-assistant/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
	errTitleRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "TITLE_REQUIRED", "Title is required")
	errTitleTooLong  = pkgErrors.NewHTTPError(http.StatusBadRequest, "TITLE_TOO_LONG", "Title must be at most 255 characters")
	errDescTooLong   = pkgErrors.NewHTTPError(http.StatusBadRequest, "DESCRIPTION_TOO_LONG", "Description must be at most 1000 characters")
	errInvalidStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_STATUS", "status must be one of all, pending, completed")
	errTaskNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "TASK_NOT_FOUND", "Task not found")
)

// mapError translates domain errors into HTTP errors. Unknown errors pass through
// and become a 500 in response.Error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, task.ErrTitleTooLong):
		return errTitleTooLong
	case errors.Is(err, task.ErrDescriptionTooLong):
		return errDescTooLong
	case errors.Is(err, task.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	default:
		return err
	}
}
