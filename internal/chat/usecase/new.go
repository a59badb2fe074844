package usecase

import (
	"time"

	"task-assistant/internal/agent"
	"task-assistant/internal/chat/repository"
	"task-assistant/pkg/events"
	pkgLog "task-assistant/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	primary   agent.Responder
	fallback  agent.Responder
	publisher events.Publisher
	now       func() time.Time
}

// New creates a new chat UseCase instance.
// primary is the LLM orchestrator and may be nil; fallback answers whenever
// primary is absent or fails.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	primary agent.Responder,
	fallback agent.Responder,
	publisher events.Publisher,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		primary:   primary,
		fallback:  fallback,
		publisher: publisher,
		now:       time.Now,
	}
}
