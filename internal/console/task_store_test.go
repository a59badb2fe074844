package console

import (
	"context"
	"errors"
	"testing"
)

func TestTaskStore_MutationsReload(t *testing.T) {
	api := newFakeAPI()
	s := NewTaskStore(api)
	ctx := context.Background()

	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if s.IsLoading() {
		t.Error("still loading after Load")
	}

	created, err := s.Create(ctx, "Pay rent", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := s.Tasks(); len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("tasks after create = %+v", got)
	}

	toggled, err := s.Toggle(ctx, created.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("Toggle = %+v, %v", toggled, err)
	}
	if !s.Tasks()[0].Completed {
		t.Error("cached task not reloaded after toggle")
	}

	if _, err := s.Update(ctx, created.ID, "Pay rent today", "before noon"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.Tasks()[0]; got.Title != "Pay rent today" || got.Description != "before noon" {
		t.Errorf("task after update = %+v", got)
	}

	if task, ok := s.Find("1"); !ok || task.ID != created.ID {
		t.Errorf("Find(1) = %+v, %v", task, ok)
	}
	if _, ok := s.Find("2"); ok {
		t.Error("Find(2) should miss")
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("tasks after delete = %+v", s.Tasks())
	}
	if api.count("list") != 5 {
		t.Errorf("list calls = %d, want 5 (load + one per mutation)", api.count("list"))
	}
}

func TestTaskStore_PendingFlag(t *testing.T) {
	api := newFakeAPI()
	s := NewTaskStore(api)

	var sawPending bool
	api.onCall = func() {
		if s.Pending(OpCreate) {
			sawPending = true
		}
	}

	if _, err := s.Create(context.Background(), "x", ""); err != nil {
		t.Fatal(err)
	}
	if !sawPending {
		t.Error("Pending(create) was not set during the call")
	}
	if s.Pending(OpCreate) {
		t.Error("Pending(create) still set after the call")
	}
	if s.Pending(OpDelete) {
		t.Error("unrelated op reported pending")
	}
}

func TestTaskStore_FailedMutationKeepsList(t *testing.T) {
	api := newFakeAPI()
	s := NewTaskStore(api)
	ctx := context.Background()
	if _, err := s.Create(ctx, "keep me", ""); err != nil {
		t.Fatal(err)
	}

	api.err = errors.New("boom")
	if _, err := s.Toggle(ctx, "t1"); err == nil {
		t.Fatal("expected error")
	}
	if len(s.Tasks()) != 1 || s.Tasks()[0].Completed {
		t.Errorf("cached list changed after failed toggle: %+v", s.Tasks())
	}
	if err := s.Load(ctx); err == nil || s.LoadErr() == nil {
		t.Error("expected load error to be kept")
	}
	if len(s.Tasks()) != 1 {
		t.Error("failed load dropped the cached list")
	}
}
