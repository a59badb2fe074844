package model

import "context"

// Scope is the authenticated principal of a request.
type Scope struct {
	UserID    string
	Email     string
	SessionID string
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored in ctx, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
