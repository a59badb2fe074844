package console

import (
	"context"
	"strconv"
	"sync"

	"task-assistant/pkg/taskapi"
)

// fakeAPI is an in-memory TaskAPI and ChatAPI.
type fakeAPI struct {
	mu    sync.Mutex
	tasks []taskapi.Task
	seq   int
	calls map[string]int
	err   error

	// chat
	sentSessions []string
	chatErr      error

	// observed by the store while a call is in flight
	onCall func()
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	f.calls[name]++
	hook := f.onCall
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.err
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) ListTasks(ctx context.Context, status string) ([]taskapi.Task, error) {
	if err := f.record("list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]taskapi.Task(nil), f.tasks...), nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, title, description string) (taskapi.Task, error) {
	if err := f.record("create"); err != nil {
		return taskapi.Task{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := taskapi.Task{ID: "t" + strconv.Itoa(f.seq), Title: title, Description: description}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id, title, description string) (taskapi.Task, error) {
	if err := f.record("update"); err != nil {
		return taskapi.Task{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Title, f.tasks[i].Description = title, description
			return f.tasks[i], nil
		}
	}
	return taskapi.Task{}, &taskapi.APIError{StatusCode: 404, Code: taskapi.CodeTaskNotFound}
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) error {
	if err := f.record("delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &taskapi.APIError{StatusCode: 404, Code: taskapi.CodeTaskNotFound}
}

func (f *fakeAPI) ToggleTask(ctx context.Context, id string) (taskapi.Task, error) {
	if err := f.record("toggle"); err != nil {
		return taskapi.Task{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			return f.tasks[i], nil
		}
	}
	return taskapi.Task{}, &taskapi.APIError{StatusCode: 404, Code: taskapi.CodeTaskNotFound}
}

func (f *fakeAPI) SendChat(ctx context.Context, message, sessionID string) (taskapi.ChatReply, error) {
	f.mu.Lock()
	f.sentSessions = append(f.sentSessions, sessionID)
	n := len(f.sentSessions)
	err := f.chatErr
	f.mu.Unlock()
	if err != nil {
		return taskapi.ChatReply{}, err
	}

	sid := sessionID
	if sid == "" {
		sid = "s-" + strconv.Itoa(n)
	}
	return taskapi.ChatReply{
		SessionID:    sid,
		Reply:        "echo: " + message,
		UserMessage:  taskapi.ChatMessage{ID: "u" + strconv.Itoa(n), SessionID: sid, MessageText: message, Sender: taskapi.SenderUser},
		AgentMessage: taskapi.ChatMessage{ID: "a" + strconv.Itoa(n), SessionID: sid, MessageText: "echo: " + message, Sender: taskapi.SenderAgent},
		TasksChanged: message == "add milk",
	}, nil
}
