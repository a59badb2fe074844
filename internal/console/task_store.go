package console

import (
	"context"
	"fmt"
	"sync"

	"task-assistant/pkg/taskapi"
)

// TaskStore is the client copy of the signed-in user's tasks.
// Every successful mutation reloads the list from the server; a failed reload
// does not fail the mutation and is reported by LoadErr.
type TaskStore struct {
	api TaskAPI

	mu      sync.RWMutex
	tasks   []taskapi.Task
	loading bool
	loadErr error
	pending map[Op]int
}

func NewTaskStore(api TaskAPI) *TaskStore {
	return &TaskStore{api: api, pending: make(map[Op]int)}
}

// Tasks returns a copy of the cached list, oldest first.
func (s *TaskStore) Tasks() []taskapi.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]taskapi.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Pending reports whether a mutation of kind op is in flight.
func (s *TaskStore) Pending(op Op) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending[op] > 0
}

// Find returns the cached task at a 1-based position or with the given id.
func (s *TaskStore) Find(ref string) (taskapi.Task, bool) {
	tasks := s.Tasks()
	for i, t := range tasks {
		if t.ID == ref || fmt.Sprint(i+1) == ref {
			return t, true
		}
	}
	return taskapi.Task{}, false
}

// Load fetches the full list. On failure the cached list is kept.
func (s *TaskStore) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	tasks, err := s.api.ListTasks(ctx, taskapi.StatusAll)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loadErr = err
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// LoadErr is the error of the latest load, nil after a successful one.
func (s *TaskStore) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *TaskStore) reload(ctx context.Context) {
	_ = s.Load(ctx)
}

func (s *TaskStore) Create(ctx context.Context, title, description string) (taskapi.Task, error) {
	done := s.begin(OpCreate)
	defer done()

	t, err := s.api.CreateTask(ctx, title, description)
	if err != nil {
		return taskapi.Task{}, err
	}
	s.reload(ctx)
	return t, nil
}

func (s *TaskStore) Update(ctx context.Context, id, title, description string) (taskapi.Task, error) {
	done := s.begin(OpUpdate)
	defer done()

	t, err := s.api.UpdateTask(ctx, id, title, description)
	if err != nil {
		return taskapi.Task{}, err
	}
	s.reload(ctx)
	return t, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	done := s.begin(OpDelete)
	defer done()

	if err := s.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

func (s *TaskStore) Toggle(ctx context.Context, id string) (taskapi.Task, error) {
	done := s.begin(OpToggle)
	defer done()

	t, err := s.api.ToggleTask(ctx, id)
	if err != nil {
		return taskapi.Task{}, err
	}
	s.reload(ctx)
	return t, nil
}

func (s *TaskStore) begin(op Op) func() {
	s.mu.Lock()
	s.pending[op]++
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.pending[op]--
		s.mu.Unlock()
	}
}
