package console

import "task-assistant/pkg/taskapi"

// Client-side routes. Dashboard and chat require a session.
const (
	RouteHome      = "/"
	RouteLogin     = "/login"
	RouteSignup    = "/signup"
	RouteDashboard = "/dashboard"
	RouteChat      = "/chat"
)

// IsProtected reports whether route goes through the SessionGate.
func IsProtected(route string) bool {
	return route == RouteDashboard || route == RouteChat
}

// SessionState is one observation of the auth session.
// User is nil when signed out; IsLoading is true until the session is resolved.
type SessionState struct {
	User      *taskapi.User
	IsLoading bool
}

// Op names a task mutation for its pending flag.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpToggle Op = "toggle"
)

// LineKind classifies one line of an assistant reply.
type LineKind int

const (
	LinePlain LineKind = iota
	LineCompleted
	LinePending
	LineBullet
	LineSuccess
)

func (k LineKind) String() string {
	switch k {
	case LineCompleted:
		return "completed"
	case LinePending:
		return "pending"
	case LineBullet:
		return "bullet"
	case LineSuccess:
		return "success"
	default:
		return "plain"
	}
}

// Line is a classified reply line. Number is set for task items only.
type Line struct {
	Kind   LineKind
	Number int
	Text   string
}
