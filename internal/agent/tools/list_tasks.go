package tools

import (
	"context"
	"strings"

	"task-assistant/internal/agent"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// ListTasksTool lists the user's tasks with their indexes.
type ListTasksTool struct {
	uc task.UseCase
}

func NewListTasksTool(uc task.UseCase) agent.Tool {
	return &ListTasksTool{uc: uc}
}

func (t *ListTasksTool) Name() string {
	return agent.ToolListTasks
}

func (t *ListTasksTool) Description() string {
	return "List the user's tasks, oldest first. Each task has an index the user can refer to."
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"all", "pending", "completed"},
				"description": "Filter by completion (default all)",
			},
		},
	}
}

func (t *ListTasksTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	raw, _ := stringParam(params, "status")
	status, ok := model.ParseTaskStatus(strings.ToLower(raw))
	if !ok {
		return nil, mapTaskError(task.ErrInvalidStatus)
	}

	tasks, err := allTasks(ctx, t.uc, sc)
	if err != nil {
		return nil, err
	}

	filtered := make([]agent.TaskData, 0, len(tasks))
	for _, d := range tasks {
		if status.Matches(model.Task{Completed: d.Completed}) {
			filtered = append(filtered, d)
		}
	}
	return agent.ListResult{Status: string(status), Tasks: filtered, Total: len(filtered)}, nil
}
