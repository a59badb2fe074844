package agent

import (
	"fmt"
	"strings"
)

const (
	markCompleted = "✓"
	markPending   = "○"
)

// FormatTaskLine renders one task as "N. ✓ title" or "N. ○ title",
// followed by an indented "- description" line when there is one.
func FormatTaskLine(t TaskData) string {
	mark := markPending
	if t.Completed {
		mark = markCompleted
	}
	line := fmt.Sprintf("%d. %s %s", t.Index, mark, t.Title)
	if t.Description != "" {
		line += "\n   - " + t.Description
	}
	return line
}

// FormatTaskList renders tasks one per line.
func FormatTaskList(tasks []TaskData) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = FormatTaskLine(t)
	}
	return strings.Join(lines, "\n")
}

// FormatResult turns an executor envelope into the reply shown to the user.
func FormatResult(r Result) string {
	if !r.OK() {
		return formatError(r.Error)
	}

	switch data := r.Data.(type) {
	case ListResult:
		return formatList(data)
	case TaskResult:
		return formatTask(data)
	default:
		return markCompleted + " Done."
	}
}

func formatList(l ListResult) string {
	qualifier := ""
	switch l.Status {
	case "pending", "completed":
		qualifier = l.Status + " "
	}
	if len(l.Tasks) == 0 {
		return fmt.Sprintf("You have no %stasks.", qualifier)
	}
	noun := "tasks"
	if len(l.Tasks) == 1 {
		noun = "task"
	}
	return fmt.Sprintf("You have %d %s%s:\n%s", len(l.Tasks), qualifier, noun, FormatTaskList(l.Tasks))
}

func formatTask(t TaskResult) string {
	switch t.Action {
	case ActionCreated:
		return fmt.Sprintf("%s Added task %d: %q", markCompleted, t.Task.Index, t.Task.Title)
	case ActionCompleted:
		if t.AlreadyDone {
			return fmt.Sprintf("%s %q was already complete", markCompleted, t.Task.Title)
		}
		return fmt.Sprintf("%s Marked %q as complete", markCompleted, t.Task.Title)
	case ActionUpdated:
		return fmt.Sprintf("%s Updated task %d:\n%s", markCompleted, t.Task.Index, FormatTaskLine(t.Task))
	case ActionDeleted:
		return fmt.Sprintf("%s Deleted %q", markCompleted, t.Task.Title)
	default:
		return markCompleted + " Done."
	}
}

func formatError(e *ResultError) string {
	if e == nil {
		return "Sorry, something went wrong."
	}
	switch e.Code {
	case CodeAmbiguousTask:
		msg := e.Message + ". Which one did you mean?"
		if candidates, ok := e.Details["candidates"].([]TaskData); ok && len(candidates) > 0 {
			msg += "\n" + FormatTaskList(candidates)
		}
		return msg
	case CodeTaskNotFound, CodeMissingTaskReference, CodeInvalidParameters:
		return e.Message + "."
	default:
		return "Sorry, I couldn't do that right now. Please try again."
	}
}
