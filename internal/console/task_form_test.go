package console

import (
	"context"
	"errors"
	"testing"

	"task-assistant/pkg/taskapi"
)

func TestTaskForm_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("blank title makes no call", func(t *testing.T) {
		api := newFakeAPI()
		f := NewTaskForm(NewTaskStore(api))
		f.Title = "   "
		f.Description = "something"

		ok, err := f.Submit(ctx)
		if ok || err != nil {
			t.Fatalf("Submit = %v, %v", ok, err)
		}
		if api.count("create") != 0 {
			t.Error("create was called")
		}
		if f.CanSubmit() {
			t.Error("CanSubmit with blank title")
		}
	})

	t.Run("success trims and clears", func(t *testing.T) {
		api := newFakeAPI()
		store := NewTaskStore(api)
		f := NewTaskForm(store)
		f.Title = "  Buy milk "
		f.Description = "  2 litres "

		ok, err := f.Submit(ctx)
		if !ok || err != nil {
			t.Fatalf("Submit = %v, %v", ok, err)
		}
		if f.Title != "" || f.Description != "" {
			t.Errorf("fields not cleared: %q %q", f.Title, f.Description)
		}
		got := store.Tasks()
		if len(got) != 1 || got[0].Title != "Buy milk" || got[0].Description != "2 litres" {
			t.Errorf("tasks = %+v", got)
		}
	})

	t.Run("failure keeps fields", func(t *testing.T) {
		api := newFakeAPI()
		api.err = errors.New("offline")
		f := NewTaskForm(NewTaskStore(api))
		f.Title = "Buy milk"

		ok, err := f.Submit(ctx)
		if ok || err == nil {
			t.Fatalf("Submit = %v, %v; want failure", ok, err)
		}
		if f.Title != "Buy milk" {
			t.Errorf("title cleared on failure")
		}
	})
}

func TestTaskEditor(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store := NewTaskStore(api)
	task, err := store.Create(ctx, "Pay rent", "monthly")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("cancel restores without update", func(t *testing.T) {
		e := NewTaskEditor(store, task)
		e.Begin()
		e.Title = "Something else"
		e.Description = ""
		e.Cancel()

		if e.Title != "Pay rent" || e.Description != "monthly" || e.Editing() {
			t.Errorf("after cancel: %q %q editing=%v", e.Title, e.Description, e.Editing())
		}
		if api.count("update") != 0 {
			t.Error("update was called")
		}
	})

	t.Run("blank title keeps editing", func(t *testing.T) {
		e := NewTaskEditor(store, task)
		e.Begin()
		e.Title = " "
		ok, err := e.Save(ctx)
		if ok || err != nil || !e.Editing() {
			t.Errorf("Save = %v, %v editing=%v", ok, err, e.Editing())
		}
		if api.count("update") != 0 {
			t.Error("update was called")
		}
	})

	t.Run("save", func(t *testing.T) {
		e := NewTaskEditor(store, task)
		e.Begin()
		e.Title = " Pay rent now "
		e.Description = "  "
		ok, err := e.Save(ctx)
		if !ok || err != nil || e.Editing() {
			t.Fatalf("Save = %v, %v editing=%v", ok, err, e.Editing())
		}
		want := taskapi.Task{ID: task.ID, Title: "Pay rent now"}
		if got := store.Tasks()[0]; got.Title != want.Title || got.Description != "" {
			t.Errorf("stored task = %+v", got)
		}

		e.Begin()
		if e.Title != "Pay rent now" {
			t.Errorf("Begin after save should start from the saved title, got %q", e.Title)
		}
	})
}
