package orchestrator

const (
	TimeContextTemplate = `
[Current time]
- Today: %s (%s)
- This week: %s to %s
- Timezone: %s`

	SystemPromptAgent = `You are a friendly assistant that manages the user's personal to-do list.
Use the tools to add, list, complete, update and delete tasks. Never invent tasks or ids.
Tasks are numbered from 1, oldest first; when the user says "task 2" pass task_index 2.
When the user names a task by its title, pass task_identifier.
After a tool runs, answer in one or two short sentences. When you show tasks, write one task per line
as "N. ✓ title" for completed tasks and "N. ○ title" for pending ones.`

	ReplyMaxStepsExceeded = "Sorry, that took too many steps. Please try breaking the request into smaller parts."
)

const (
	MaxAgentSteps = 5
	DateFormatISO = "2006-01-02"

	IntentConversation = "conversation"
)
