package console

import "errors"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a message is already being sent")
)
