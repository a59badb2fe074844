package console

import (
	"testing"

	"task-assistant/pkg/taskapi"
)

func TestSessionGate(t *testing.T) {
	var redirects []string
	g := NewSessionGate(func(route string) { redirects = append(redirects, route) })

	if g.Observe(SessionState{IsLoading: true}) {
		t.Error("loading session must not render")
	}
	if len(redirects) != 0 {
		t.Fatalf("redirected while loading: %v", redirects)
	}

	if g.Observe(SessionState{}) {
		t.Error("signed-out session must not render")
	}
	g.Observe(SessionState{})
	g.Observe(SessionState{IsLoading: true})
	g.Observe(SessionState{})

	if len(redirects) != 1 || redirects[0] != RouteLogin {
		t.Errorf("redirects = %v, want exactly one to %s", redirects, RouteLogin)
	}
	if !g.Redirected() {
		t.Error("Redirected() = false")
	}
}

func TestSessionGate_SignedIn(t *testing.T) {
	called := false
	g := NewSessionGate(func(string) { called = true })

	if !g.Observe(SessionState{User: &taskapi.User{ID: "u1"}}) {
		t.Error("signed-in session should render")
	}
	if called || g.Redirected() {
		t.Error("signed-in session must never redirect")
	}
}

func TestIsProtected(t *testing.T) {
	tests := map[string]bool{
		RouteHome:      false,
		RouteLogin:     false,
		RouteSignup:    false,
		RouteDashboard: true,
		RouteChat:      true,
	}
	for route, want := range tests {
		if got := IsProtected(route); got != want {
			t.Errorf("IsProtected(%q) = %v, want %v", route, got, want)
		}
	}
}
