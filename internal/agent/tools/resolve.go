package tools

import (
	"context"
	"fmt"
	"strings"

	"task-assistant/internal/agent"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// Reference parameters shared by the single-task tools.
var refProperties = map[string]interface{}{
	"task_id": map[string]interface{}{
		"type":        "string",
		"description": "Exact task id",
	},
	"task_index": map[string]interface{}{
		"type":        "integer",
		"description": "1-based position of the task in the full list, oldest first",
	},
	"task_identifier": map[string]interface{}{
		"type":        "string",
		"description": "Part of the task title, case-insensitive",
	},
}

// resolveTask finds the single task params refer to. task_id wins over
// task_index, which wins over task_identifier.
func resolveTask(ctx context.Context, uc task.UseCase, sc model.Scope, params map[string]interface{}) (agent.TaskData, error) {
	id, hasID := stringParam(params, "task_id")
	index, hasIndex, err := intParam(params, "task_index")
	if err != nil {
		return agent.TaskData{}, agent.NewToolError(agent.CodeInvalidParameters, "%s", err.Error())
	}
	ident, hasIdent := stringParam(params, "task_identifier")

	hasID = hasID && id != ""
	hasIdent = hasIdent && ident != ""
	if !hasID && !hasIndex && !hasIdent {
		return agent.TaskData{}, agent.NewToolError(agent.CodeMissingTaskReference, "Please tell me which task, by number or by title")
	}

	tasks, err := allTasks(ctx, uc, sc)
	if err != nil {
		return agent.TaskData{}, err
	}

	switch {
	case hasID:
		for _, t := range tasks {
			if t.ID == id {
				return t, nil
			}
		}
		return agent.TaskData{}, agent.NewToolError(agent.CodeTaskNotFound, "I couldn't find that task")

	case hasIndex:
		if index < 1 || index > len(tasks) {
			return agent.TaskData{}, &agent.ToolError{
				Code:    agent.CodeTaskNotFound,
				Message: notFoundIndexMessage(index, len(tasks)),
				Details: map[string]interface{}{"task_index": index, "total": len(tasks)},
			}
		}
		return tasks[index-1], nil

	default:
		return matchTitle(tasks, ident)
	}
}

func notFoundIndexMessage(index, total int) string {
	switch total {
	case 0:
		return "You have no tasks yet"
	case 1:
		return fmt.Sprintf("I couldn't find task %d; you have only 1 task", index)
	default:
		return fmt.Sprintf("I couldn't find task %d; you have %d tasks", index, total)
	}
}

// matchTitle requires exactly one title containing fragment. An exact
// title match wins when several titles contain it.
func matchTitle(tasks []agent.TaskData, fragment string) (agent.TaskData, error) {
	needle := strings.ToLower(fragment)

	var matches []agent.TaskData
	for _, t := range tasks {
		title := strings.ToLower(t.Title)
		if title == needle {
			return t, nil
		}
		if strings.Contains(title, needle) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return agent.TaskData{}, &agent.ToolError{
			Code:    agent.CodeTaskNotFound,
			Message: "I couldn't find a task matching \"" + fragment + "\"",
			Details: map[string]interface{}{"task_identifier": fragment},
		}
	case 1:
		return matches[0], nil
	default:
		return agent.TaskData{}, &agent.ToolError{
			Code:    agent.CodeAmbiguousTask,
			Message: "More than one task matches \"" + fragment + "\"",
			Details: map[string]interface{}{"task_identifier": fragment, "candidates": matches},
		}
	}
}
