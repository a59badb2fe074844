package console

import (
	"context"
	"strings"

	"task-assistant/pkg/taskapi"
)

// TaskEditor is the inline editor of one task.
type TaskEditor struct {
	Title       string
	Description string

	task    taskapi.Task
	editing bool
	store   *TaskStore
}

func NewTaskEditor(store *TaskStore, task taskapi.Task) *TaskEditor {
	return &TaskEditor{
		Title:       task.Title,
		Description: task.Description,
		task:        task,
		store:       store,
	}
}

func (e *TaskEditor) Editing() bool {
	return e.editing
}

// Begin starts editing from the task's current values.
func (e *TaskEditor) Begin() {
	e.Title = e.task.Title
	e.Description = e.task.Description
	e.editing = true
}

// Cancel drops the edits without calling the API.
func (e *TaskEditor) Cancel() {
	e.Title = e.task.Title
	e.Description = e.task.Description
	e.editing = false
}

// Save sends the trimmed fields. A blank title makes no call and keeps editing.
func (e *TaskEditor) Save(ctx context.Context) (bool, error) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return false, nil
	}

	updated, err := e.store.Update(ctx, e.task.ID, title, strings.TrimSpace(e.Description))
	if err != nil {
		return false, err
	}

	e.task = updated
	e.Title = updated.Title
	e.Description = updated.Description
	e.editing = false
	return true, nil
}
