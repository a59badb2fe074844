package agent

import (
	"context"
	"sort"

	"task-assistant/pkg/llmprovider"
)

// Tool names exposed to the model and to the intent parser.
const (
	ToolAddTask      = "add_task"
	ToolListTasks    = "list_tasks"
	ToolCompleteTask = "complete_task"
	ToolUpdateTask   = "update_task"
	ToolDeleteTask   = "delete_task"
)

// Tool represents an agent tool that can be called by the LLM or the intent parser.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool for the Scope found in ctx.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// IsMutating reports whether a successful call of the named tool changes the task list.
func IsMutating(name string) bool {
	switch name {
	case ToolAddTask, ToolCompleteTask, ToolUpdateTask, ToolDeleteTask:
		return true
	default:
		return false
	}
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	list := r.List()
	tools := make([]llmprovider.Tool, 0, len(list))
	for _, tool := range list {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}

// TaskData is the task shape tools hand back. Index is the 1-based position
// in the user's full task list, oldest first.
type TaskData struct {
	ID          string `json:"id"`
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// Task actions reported in TaskResult.
const (
	ActionCreated   = "created"
	ActionCompleted = "completed"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
)

// TaskResult is returned by the single-task tools.
type TaskResult struct {
	Action string   `json:"action"`
	Task   TaskData `json:"task"`
	// AlreadyDone is set when complete_task found the task completed already.
	AlreadyDone bool `json:"already_done,omitempty"`
}

// ListResult is returned by list_tasks.
type ListResult struct {
	Status string     `json:"status"`
	Tasks  []TaskData `json:"tasks"`
	Total  int        `json:"total"`
}
