package tools

import (
	"context"

	"task-assistant/internal/agent"
	"task-assistant/internal/task"
)

// DeleteTaskTool removes a task for good.
type DeleteTaskTool struct {
	uc task.UseCase
}

func NewDeleteTaskTool(uc task.UseCase) agent.Tool {
	return &DeleteTaskTool{uc: uc}
}

func (t *DeleteTaskTool) Name() string {
	return agent.ToolDeleteTask
}

func (t *DeleteTaskTool) Description() string {
	return "Delete one task permanently. Identify it by task_id, task_index or task_identifier."
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": refProperties,
	}
}

func (t *DeleteTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	target, err := resolveTask(ctx, t.uc, sc, params)
	if err != nil {
		return nil, err
	}

	if err := t.uc.Delete(ctx, sc, target.ID); err != nil {
		return nil, mapTaskError(err)
	}
	return agent.TaskResult{Action: agent.ActionDeleted, Task: target}, nil
}
