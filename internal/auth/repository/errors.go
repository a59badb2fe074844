package repository

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
