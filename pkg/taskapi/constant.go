package taskapi

import "time"

const (
	// DefaultBaseURL is the API address used by a local `cmd/api`.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTimeout covers a chat round trip through the LLM fallback chain.
	DefaultTimeout = 90 * time.Second
)

// Task list filters.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Message senders.
const (
	SenderUser  = "user"
	SenderAgent = "agent"
)
