package intent

import "task-assistant/internal/agent"

// Intent is what the user asked for.
type Intent string

const (
	IntentAddTask      Intent = agent.ToolAddTask
	IntentListTasks    Intent = agent.ToolListTasks
	IntentCompleteTask Intent = agent.ToolCompleteTask
	IntentUpdateTask   Intent = agent.ToolUpdateTask
	IntentDeleteTask   Intent = agent.ToolDeleteTask
	IntentGreeting     Intent = "greeting"
	IntentHelp         Intent = "help"
	IntentUnknown      Intent = "unknown"
)

// Tool returns the tool that serves the intent, or "" for conversational intents.
func (i Intent) Tool() string {
	switch i {
	case IntentAddTask, IntentListTasks, IntentCompleteTask, IntentUpdateTask, IntentDeleteTask:
		return string(i)
	default:
		return ""
	}
}

// Output is the parsed form of one message. Params is set for tool intents,
// Reply for conversational ones.
type Output struct {
	Intent Intent
	Params map[string]interface{}
	Reply  string
}
