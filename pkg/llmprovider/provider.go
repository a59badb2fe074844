package llmprovider

import "context"

// Roles used in Message.Role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleFunction  = "function"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "deepseek", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is what callers of the abstraction depend on; *Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string
	Parts []Part
}

// Part represents a message part (text or function call)
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's function call request
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents a function execution result
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the text parts of the response.
func (r *Response) Text() string {
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

// FunctionCalls returns the function calls requested by the model, in order.
func (r *Response) FunctionCalls() []FunctionCall {
	var calls []FunctionCall
	for _, p := range r.Content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
