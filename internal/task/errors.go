package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidStatus      = errors.New("invalid status filter")
)
