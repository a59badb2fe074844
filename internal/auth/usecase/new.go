package usecase

import (
	"sync"
	"time"

	"task-assistant/internal/auth/repository"
	"task-assistant/pkg/encrypter"
	pkgLog "task-assistant/pkg/log"
	"task-assistant/pkg/scope"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	tokens     scope.Manager
	encrypter  encrypter.Encrypter
	sessionTTL time.Duration
	now        func() time.Time

	// dummyHash is compared against when the email is unknown so both
	// sign-in failures cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

// New creates a new auth UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	tokens scope.Manager,
	enc encrypter.Encrypter,
	sessionTTL time.Duration,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		tokens:     tokens,
		encrypter:  enc,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}
