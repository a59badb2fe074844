package console

import (
	"context"
	"strings"
)

// TaskForm is the new-task form.
type TaskForm struct {
	Title       string
	Description string

	store *TaskStore
}

func NewTaskForm(store *TaskStore) *TaskForm {
	return &TaskForm{store: store}
}

// CanSubmit mirrors the disabled state of the submit control.
func (f *TaskForm) CanSubmit() bool {
	return strings.TrimSpace(f.Title) != "" && !f.store.Pending(OpCreate)
}

// Submit creates the task from the trimmed fields. A blank title makes no call.
// The fields are cleared only after a successful create.
func (f *TaskForm) Submit(ctx context.Context) (bool, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return false, nil
	}

	if _, err := f.store.Create(ctx, title, strings.TrimSpace(f.Description)); err != nil {
		return false, err
	}

	f.Title = ""
	f.Description = ""
	return true, nil
}
