// Package tools holds the task tools the assistant can call.
package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"task-assistant/internal/agent"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

var errNoScope = errors.New("no authenticated user in context")

// Register adds every task tool to registry.
func Register(registry *agent.ToolRegistry, uc task.UseCase) {
	registry.Register(NewAddTaskTool(uc))
	registry.Register(NewListTasksTool(uc))
	registry.Register(NewCompleteTaskTool(uc))
	registry.Register(NewUpdateTaskTool(uc))
	registry.Register(NewDeleteTaskTool(uc))
}

func scopeFrom(ctx context.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return model.Scope{}, errNoScope
	}
	return sc, nil
}

// stringParam returns the trimmed string value of key. present is true when
// the key exists with a string value, even an empty one.
func stringParam(params map[string]interface{}, key string) (value string, present bool) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// intParam accepts JSON numbers, Go ints and numeric strings.
func intParam(params map[string]interface{}, key string) (int, bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, true, fmt.Errorf("%s must be a whole number", key)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, true, fmt.Errorf("%s must be a number", key)
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("%s must be a number", key)
	}
}

// mapTaskError converts task usecase errors into tool errors the user can act on.
func mapTaskError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return agent.NewToolError(agent.CodeTaskNotFound, "I couldn't find that task")
	case errors.Is(err, task.ErrTitleRequired):
		return agent.NewToolError(agent.CodeInvalidParameters, "A task needs a title")
	case errors.Is(err, task.ErrTitleTooLong):
		return agent.NewToolError(agent.CodeInvalidParameters, "The title can be at most %d characters", task.MaxTitleLength)
	case errors.Is(err, task.ErrDescriptionTooLong):
		return agent.NewToolError(agent.CodeInvalidParameters, "The description can be at most %d characters", task.MaxDescriptionLength)
	case errors.Is(err, task.ErrInvalidStatus):
		return agent.NewToolError(agent.CodeInvalidParameters, "Status must be all, pending or completed")
	default:
		return err
	}
}

func toData(t model.Task, index int) agent.TaskData {
	return agent.TaskData{
		ID:          t.ID,
		Index:       index,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// allTasks returns the user's tasks, oldest first, with their 1-based indexes.
func allTasks(ctx context.Context, uc task.UseCase, sc model.Scope) ([]agent.TaskData, error) {
	out, err := uc.List(ctx, sc, task.ListInput{Status: model.TaskStatusAll})
	if err != nil {
		return nil, err
	}
	data := make([]agent.TaskData, len(out.Tasks))
	for i, t := range out.Tasks {
		data[i] = toData(t, i+1)
	}
	return data, nil
}

func indexOf(tasks []agent.TaskData, id string) int {
	for _, t := range tasks {
		if t.ID == id {
			return t.Index
		}
	}
	return 0
}
