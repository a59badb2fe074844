package agent

import "fmt"

// Error codes carried in the executor envelope.
const (
	CodeUnknownTool          = "UNKNOWN_TOOL"
	CodeExecutionError       = "EXECUTION_ERROR"
	CodeTaskNotFound         = "TASK_NOT_FOUND"
	CodeAmbiguousTask        = "AMBIGUOUS_TASK"
	CodeMissingTaskReference = "MISSING_TASK_REFERENCE"
	CodeInvalidParameters    = "INVALID_PARAMETERS"
)

// ToolError is an error a tool reports with its own code.
type ToolError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewToolError builds a ToolError without details.
func NewToolError(code, format string, args ...interface{}) *ToolError {
	return &ToolError{Code: code, Message: fmt.Sprintf(format, args...)}
}
