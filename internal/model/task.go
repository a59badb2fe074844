package model

import "time"

// Task is a to-do item owned by one user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskStatus filters task lists.
type TaskStatus string

const (
	TaskStatusAll       TaskStatus = "all"
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// ParseTaskStatus maps free-form input to a TaskStatus. Empty means all.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case "", TaskStatusAll:
		return TaskStatusAll, true
	case TaskStatusPending, TaskStatusCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

// Matches reports whether t belongs to the status filter.
func (s TaskStatus) Matches(t Task) bool {
	switch s {
	case TaskStatusPending:
		return !t.Completed
	case TaskStatusCompleted:
		return t.Completed
	}
	return true
}
