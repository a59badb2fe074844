package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
	"task-assistant/internal/task/repository/memory"
	"task-assistant/pkg/cache"
	"task-assistant/pkg/events"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

// countingRepo counts List calls to observe the cache.
type countingRepo struct {
	repo.Repository
	lists int
}

func (r *countingRepo) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	r.lists++
	return r.Repository.List(ctx, opt)
}

func newTestUseCase(t *testing.T) (*implUseCase, *countingRepo, *recordingPublisher) {
	t.Helper()
	c, err := cache.New[[]model.Task](cache.Config{MaxCost: 100})
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	t.Cleanup(c.Close)

	r := &countingRepo{Repository: memory.New()}
	pub := &recordingPublisher{}
	return New(&mockLogger{}, r, c, time.Minute, pub), r, pub
}

var alice = model.Scope{UserID: "alice"}
var bob = model.Scope{UserID: "bob"}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		want    model.Task
		wantErr error
	}{
		{
			name:  "trims fields",
			input: task.CreateInput{Title: "  Buy milk ", Description: "  2 litres  "},
			want:  model.Task{Title: "Buy milk", Description: "2 litres"},
		},
		{
			name:  "blank description is absent",
			input: task.CreateInput{Title: "Walk", Description: "   "},
			want:  model.Task{Title: "Walk"},
		},
		{name: "empty title", input: task.CreateInput{Title: "   "}, wantErr: task.ErrTitleRequired},
		{name: "title too long", input: task.CreateInput{Title: strings.Repeat("é", 256)}, wantErr: task.ErrTitleTooLong},
		{name: "description too long", input: task.CreateInput{Title: "x", Description: strings.Repeat("d", 1001)}, wantErr: task.ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, pub := newTestUseCase(t)

			got, err := uc.Create(context.Background(), alice, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(pub.types()) != 0 {
					t.Error("no event expected on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.want.Title || got.Description != tt.want.Description || got.Completed || got.UserID != "alice" {
				t.Errorf("unexpected task %+v", got)
			}
			if types := pub.types(); len(types) != 1 || types[0] != events.TaskCreated {
				t.Errorf("unexpected events %v", types)
			}
		})
	}
}

func TestListUsesCacheAndInvalidates(t *testing.T) {
	uc, r, _ := newTestUseCase(t)
	ctx := context.Background()

	_, _ = uc.Create(ctx, alice, task.CreateInput{Title: "one"})

	for i := 0; i < 3; i++ {
		out, err := uc.List(ctx, alice, task.ListInput{})
		if err != nil || out.Total != 1 {
			t.Fatalf("unexpected list %+v %v", out, err)
		}
	}
	if r.lists != 1 {
		t.Errorf("expected a single repository List, got %d", r.lists)
	}

	_, _ = uc.Create(ctx, alice, task.CreateInput{Title: "two"})
	out, _ := uc.List(ctx, alice, task.ListInput{})
	if out.Total != 2 || out.Tasks[0].Title != "one" || out.Tasks[1].Title != "two" {
		t.Errorf("stale or misordered list after create: %+v", out.Tasks)
	}
	if r.lists != 2 {
		t.Errorf("expected cache invalidation, got %d lists", r.lists)
	}
}

// gatedRepo parks the first List call after its read until release is closed.
type gatedRepo struct {
	repo.Repository
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (r *gatedRepo) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	tasks, err := r.Repository.List(ctx, opt)
	r.once.Do(func() {
		close(r.read)
		<-r.release
	})
	return tasks, err
}

func TestListDoesNotCacheReadOverlappingMutation(t *testing.T) {
	c, err := cache.New[[]model.Task](cache.Config{MaxCost: 100})
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	t.Cleanup(c.Close)

	r := &gatedRepo{Repository: memory.New(), read: make(chan struct{}), release: make(chan struct{})}
	uc := New(&mockLogger{}, r, c, time.Minute, events.NewNop())
	ctx := context.Background()

	done := make(chan task.ListOutput)
	go func() {
		out, _ := uc.List(ctx, alice, task.ListInput{})
		done <- out
	}()

	<-r.read
	if _, err := uc.Create(ctx, alice, task.CreateInput{Title: "one"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	close(r.release)

	if stale := <-done; stale.Total != 0 {
		t.Fatalf("first list should reflect the earlier read, got %d", stale.Total)
	}

	out, err := uc.List(ctx, alice, task.ListInput{})
	if err != nil || out.Total != 1 {
		t.Errorf("list after create: total=%d err=%v, want 1", out.Total, err)
	}
}

func TestListStatusFilter(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	a, _ := uc.Create(ctx, alice, task.CreateInput{Title: "a"})
	_, _ = uc.Create(ctx, alice, task.CreateInput{Title: "b"})
	if _, err := uc.Toggle(ctx, alice, a.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	pending, _ := uc.List(ctx, alice, task.ListInput{Status: model.TaskStatusPending})
	completed, _ := uc.List(ctx, alice, task.ListInput{Status: model.TaskStatusCompleted})
	if pending.Total != 1 || pending.Tasks[0].Title != "b" {
		t.Errorf("unexpected pending %+v", pending)
	}
	if completed.Total != 1 || completed.Tasks[0].Title != "a" {
		t.Errorf("unexpected completed %+v", completed)
	}

	if _, err := uc.List(ctx, alice, task.ListInput{Status: "done"}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	uc, _, pub := newTestUseCase(t)
	ctx := context.Background()
	created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "old", Description: "desc"})

	t.Run("replaces fields and clears description", func(t *testing.T) {
		got, err := uc.Update(ctx, alice, task.UpdateInput{ID: created.ID, Title: " new "})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Title != "new" || got.Description != "" {
			t.Errorf("unexpected task %+v", got)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		if _, err := uc.Update(ctx, alice, task.UpdateInput{ID: created.ID, Title: ""}); !errors.Is(err, task.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("foreign task not found", func(t *testing.T) {
		if _, err := uc.Update(ctx, bob, task.UpdateInput{ID: created.ID, Title: "hijack"}); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	types := pub.types()
	if types[len(types)-1] != events.TaskUpdated {
		t.Errorf("expected last event %s, got %v", events.TaskUpdated, types)
	}
}

func TestToggleAndComplete(t *testing.T) {
	uc, _, pub := newTestUseCase(t)
	ctx := context.Background()
	created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "t"})

	got, err := uc.Toggle(ctx, alice, created.ID)
	if err != nil || !got.Completed {
		t.Fatalf("first toggle: %+v %v", got, err)
	}
	got, _ = uc.Toggle(ctx, alice, created.ID)
	if got.Completed {
		t.Fatal("second toggle must reopen the task")
	}

	got, _ = uc.Complete(ctx, alice, created.ID)
	if !got.Completed {
		t.Fatal("complete must set completed")
	}
	before := len(pub.types())
	got, err = uc.Complete(ctx, alice, created.ID)
	if err != nil || !got.Completed {
		t.Fatalf("complete must be idempotent: %+v %v", got, err)
	}
	if len(pub.types()) != before {
		t.Error("idempotent complete must not publish")
	}

	if _, err := uc.Toggle(ctx, bob, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	uc, _, pub := newTestUseCase(t)
	ctx := context.Background()
	created, _ := uc.Create(ctx, alice, task.CreateInput{Title: "t"})
	_, _ = uc.List(ctx, alice, task.ListInput{})

	if err := uc.Delete(ctx, bob, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign delete, got %v", err)
	}
	if err := uc.Delete(ctx, alice, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, alice, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}

	out, _ := uc.List(ctx, alice, task.ListInput{})
	if out.Total != 0 {
		t.Errorf("cached list survived delete: %+v", out)
	}
	types := pub.types()
	if types[len(types)-1] != events.TaskDeleted {
		t.Errorf("unexpected events %v", types)
	}
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	uc, _, pub := newTestUseCase(t)
	pub.err = errors.New("nats down")

	if _, err := uc.Create(context.Background(), alice, task.CreateInput{Title: "still saved"}); err != nil {
		t.Fatalf("publish failure leaked: %v", err)
	}
}
