package usecase

import (
	"sync"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/cache"
	"task-assistant/pkg/events"
	pkgLog "task-assistant/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	listCache cache.Cache[[]model.Task]
	cacheTTL  time.Duration
	publisher events.Publisher
	now       func() time.Time

	// genMu guards gens, the per-user count of list invalidations.
	genMu sync.Mutex
	gens  map[string]uint64
}

// New creates a new task UseCase instance.
// listCache may be cache.NewNop and publisher events.NewNop when those features are off.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	listCache cache.Cache[[]model.Task],
	cacheTTL time.Duration,
	publisher events.Publisher,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		listCache: listCache,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		now:       time.Now,
		gens:      make(map[string]uint64),
	}
}
