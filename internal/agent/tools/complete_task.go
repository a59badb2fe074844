package tools

import (
	"context"

	"task-assistant/internal/agent"
	"task-assistant/internal/task"
)

// CompleteTaskTool marks a task as done.
type CompleteTaskTool struct {
	uc task.UseCase
}

func NewCompleteTaskTool(uc task.UseCase) agent.Tool {
	return &CompleteTaskTool{uc: uc}
}

func (t *CompleteTaskTool) Name() string {
	return agent.ToolCompleteTask
}

func (t *CompleteTaskTool) Description() string {
	return "Mark one task as completed. Identify it by task_id, task_index or task_identifier."
}

func (t *CompleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": refProperties,
	}
}

func (t *CompleteTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	target, err := resolveTask(ctx, t.uc, sc, params)
	if err != nil {
		return nil, err
	}

	done, err := t.uc.Complete(ctx, sc, target.ID)
	if err != nil {
		return nil, mapTaskError(err)
	}
	return agent.TaskResult{
		Action:      agent.ActionCompleted,
		Task:        toData(done, target.Index),
		AlreadyDone: target.Completed,
	}, nil
}
