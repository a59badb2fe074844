package orchestrator

import (
	"time"

	"task-assistant/internal/agent"
	"task-assistant/pkg/llmprovider"
	pkgLog "task-assistant/pkg/log"
)

// Orchestrator answers chat messages with an LLM that may call the task tools.
type Orchestrator struct {
	llm      llmprovider.Generator
	exec     *agent.Executor
	l        pkgLog.Logger
	location *time.Location
	now      func() time.Time
}

var _ agent.Responder = (*Orchestrator)(nil)

// New creates an Orchestrator. An unknown timezone falls back to UTC.
func New(llm llmprovider.Generator, exec *agent.Executor, l pkgLog.Logger, timezone string) *Orchestrator {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}
	return &Orchestrator{
		llm:      llm,
		exec:     exec,
		l:        l,
		location: loc,
		now:      time.Now,
	}
}
