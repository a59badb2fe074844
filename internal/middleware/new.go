package middleware

import (
	"context"

	"task-assistant/config"
	"task-assistant/internal/model"
	"task-assistant/pkg/log"
)

// SessionResolver turns a session token into the Scope it was issued for.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l          log.Logger
	sessions   SessionResolver
	cookieName string
	cors       config.CORSConfig
	limiter    *rateLimiter
}

func New(l log.Logger, sessions SessionResolver, cfg *config.Config) Middleware {
	mw := Middleware{
		l:          l,
		sessions:   sessions,
		cookieName: cfg.Auth.CookieName,
		cors:       cfg.CORS,
	}
	if cfg.RateLimit.Enabled {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerM)
	}
	return mw
}
