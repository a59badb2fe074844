package http

import (
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: model.TaskStatus(r.Status)}
}

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{Title: r.Title, Description: r.Description}
}

type updateReq struct {
	ID          string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{ID: r.ID, Title: r.Title, Description: r.Description}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Description != "" {
		d := t.Description
		resp.Description = &d
	}
	return resp
}

type singleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newSingleResp(t model.Task) singleResp {
	return singleResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type successResp struct {
	Success bool `json:"success"`
}
