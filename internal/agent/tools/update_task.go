package tools

import (
	"context"

	"task-assistant/internal/agent"
	"task-assistant/internal/task"
)

// UpdateTaskTool changes a task's title and/or description.
type UpdateTaskTool struct {
	uc task.UseCase
}

func NewUpdateTaskTool(uc task.UseCase) agent.Tool {
	return &UpdateTaskTool{uc: uc}
}

func (t *UpdateTaskTool) Name() string {
	return agent.ToolUpdateTask
}

func (t *UpdateTaskTool) Description() string {
	return "Rename a task or change its description. Fields that are not given keep their value; an empty new_description clears it."
}

func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	props := map[string]interface{}{
		"new_title": map[string]interface{}{
			"type":        "string",
			"description": "Replacement title",
		},
		"new_description": map[string]interface{}{
			"type":        "string",
			"description": "Replacement description",
		},
	}
	for k, v := range refProperties {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
}

func (t *UpdateTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	newTitle, hasTitle := stringParam(params, "new_title")
	newDesc, hasDesc := stringParam(params, "new_description")
	if !hasTitle && !hasDesc {
		return nil, agent.NewToolError(agent.CodeInvalidParameters, "Tell me the new title or description")
	}

	target, err := resolveTask(ctx, t.uc, sc, params)
	if err != nil {
		return nil, err
	}

	input := task.UpdateInput{ID: target.ID, Title: target.Title, Description: target.Description}
	if hasTitle {
		input.Title = newTitle
	}
	if hasDesc {
		input.Description = newDesc
	}

	updated, err := t.uc.Update(ctx, sc, input)
	if err != nil {
		return nil, mapTaskError(err)
	}
	return agent.TaskResult{Action: agent.ActionUpdated, Task: toData(updated, target.Index)}, nil
}
