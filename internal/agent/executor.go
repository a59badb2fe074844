package agent

import (
	"context"
	"errors"

	pkgLog "task-assistant/pkg/log"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the envelope every tool call is wrapped in.
type Result struct {
	Status string       `json:"status"`
	Data   interface{}  `json:"data,omitempty"`
	Error  *ResultError `json:"error,omitempty"`
}

type ResultError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Executor runs registry tools and never returns a bare error.
type Executor struct {
	registry *ToolRegistry
	l        pkgLog.Logger
}

func NewExecutor(registry *ToolRegistry, l pkgLog.Logger) *Executor {
	return &Executor{registry: registry, l: l}
}

// Registry returns the registry the executor dispatches to.
func (e *Executor) Registry() *ToolRegistry {
	return e.registry
}

// Execute runs the named tool. Tool failures come back as an error envelope.
func (e *Executor) Execute(ctx context.Context, name string, params map[string]interface{}) Result {
	tool, ok := e.registry.Get(name)
	if !ok {
		e.l.Warnf(ctx, "agent.Executor.Execute: unknown tool %q", name)
		return Result{
			Status: StatusError,
			Error: &ResultError{
				Code:    CodeUnknownTool,
				Message: "Tool '" + name + "' not found",
				Details: map[string]interface{}{"tool_name": name},
			},
		}
	}

	if params == nil {
		params = map[string]interface{}{}
	}

	data, err := tool.Execute(ctx, params)
	if err != nil {
		var te *ToolError
		if errors.As(err, &te) {
			e.l.Infof(ctx, "agent.Executor.Execute: %s returned %s", name, te.Code)
			return Result{
				Status: StatusError,
				Error:  &ResultError{Code: te.Code, Message: te.Message, Details: te.Details},
			}
		}
		e.l.Errorf(ctx, "agent.Executor.Execute: %s failed: %v", name, err)
		return Result{
			Status: StatusError,
			Error: &ResultError{
				Code:    CodeExecutionError,
				Message: "Failed to execute tool",
				Details: map[string]interface{}{"error": err.Error()},
			},
		}
	}

	e.l.Infof(ctx, "agent.Executor.Execute: %s succeeded", name)
	return Result{Status: StatusSuccess, Data: data}
}
