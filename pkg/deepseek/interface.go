package deepseek

import "context"

// IDeepSeek is an OpenAI-compatible chat-completions client.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
