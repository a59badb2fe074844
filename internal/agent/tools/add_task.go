package tools

import (
	"context"

	"task-assistant/internal/agent"
	"task-assistant/internal/task"
)

// AddTaskTool creates a task.
type AddTaskTool struct {
	uc task.UseCase
}

func NewAddTaskTool(uc task.UseCase) agent.Tool {
	return &AddTaskTool{uc: uc}
}

func (t *AddTaskTool) Name() string {
	return agent.ToolAddTask
}

func (t *AddTaskTool) Description() string {
	return "Create a new task for the user. Use when the user wants to add, create or remember something to do."
}

func (t *AddTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Short title of the task",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional details",
			},
		},
		"required": []string{"title"},
	}
}

func (t *AddTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	title, _ := stringParam(params, "title")
	description, _ := stringParam(params, "description")

	created, err := t.uc.Create(ctx, sc, task.CreateInput{Title: title, Description: description})
	if err != nil {
		return nil, mapTaskError(err)
	}

	tasks, err := allTasks(ctx, t.uc, sc)
	if err != nil {
		return nil, err
	}
	return agent.TaskResult{Action: agent.ActionCreated, Task: toData(created, indexOf(tasks, created.ID))}, nil
}
