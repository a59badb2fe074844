package console

import "sync"

// SessionGate guards protected screens. It decides nothing while the session
// is loading, and redirects to the login route at most once.
type SessionGate struct {
	mu         sync.Mutex
	redirect   func(route string)
	redirected bool
}

func NewSessionGate(redirect func(route string)) *SessionGate {
	return &SessionGate{redirect: redirect}
}

// Observe feeds one session snapshot and reports whether the screen may render.
func (g *SessionGate) Observe(s SessionState) bool {
	if s.IsLoading {
		return false
	}
	if s.User != nil {
		return true
	}

	g.mu.Lock()
	fire := !g.redirected
	g.redirected = true
	g.mu.Unlock()

	if fire && g.redirect != nil {
		g.redirect(RouteLogin)
	}
	return false
}

// Redirected reports whether the gate has sent the user to login.
func (g *SessionGate) Redirected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.redirected
}
