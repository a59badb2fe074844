package http

import (
	"task-assistant/config"
	"task-assistant/internal/auth"
	"task-assistant/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie config.AuthConfig
}

// New creates a new HTTP handler for the auth domain.
// cookie supplies the session cookie name, Secure flag and domain.
func New(l log.Logger, uc auth.UseCase, cookie config.AuthConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
