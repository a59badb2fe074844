package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"task-assistant/pkg/deepseek"
	"task-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, 0, len(req.Messages)),
		Tools:             make([]gemini.Tool, 0, len(req.Tools)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, *toGeminiContent(&req.Messages[i]))
	}
	for _, t := range req.Tools {
		geminiReq.Tools = append(geminiReq.Tools, gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, 0, len(resp.Content.Parts))
	for _, p := range resp.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		parts = append(parts, part)
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini knows only "user" and "model"; function results travel as user turns.
func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	role := msg.Role
	switch role {
	case RoleAssistant:
		role = "model"
	case RoleFunction:
		role = RoleUser
	}

	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

// OpenAICompatAdapter adapts pkg/deepseek (any chat-completions API) to the Provider interface.
type OpenAICompatAdapter struct {
	name   string
	client deepseek.IDeepSeek
}

// NewOpenAICompatAdapter creates an adapter reported under name.
func NewOpenAICompatAdapter(name string, client deepseek.IDeepSeek) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		var text string
		for _, p := range req.SystemInstruction.Parts {
			text += p.Text
		}
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: text})
	}
	dsReq.Messages = append(dsReq.Messages, toChatMessages(req.Messages)...)

	for _, t := range req.Tools {
		dsReq.Tools = append(dsReq.Tools, deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	return fromChatResponse(a.name, resp)
}

func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

// callID pairs a function call with its response by position inside the turn.
func callID(i int, name string) string {
	return fmt.Sprintf("call_%d_%s", i, name)
}

func toChatMessages(msgs []Message) []deepseek.Message {
	out := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case RoleFunction:
			// One tool message per function response.
			for i, p := range msg.Parts {
				if p.FunctionResponse == nil {
					continue
				}
				body, _ := json.Marshal(p.FunctionResponse.Response)
				out = append(out, deepseek.Message{
					Role:       "tool",
					Name:       p.FunctionResponse.Name,
					ToolCallID: callID(i, p.FunctionResponse.Name),
					Content:    string(body),
				})
			}

		default:
			m := deepseek.Message{Role: msg.Role}
			calls := 0
			for _, p := range msg.Parts {
				m.Content += p.Text
				if p.FunctionCall != nil {
					args, _ := json.Marshal(p.FunctionCall.Args)
					m.ToolCalls = append(m.ToolCalls, deepseek.ToolCall{
						ID:   callID(calls, p.FunctionCall.Name),
						Type: "function",
						Function: deepseek.FunctionCall{
							Name:      p.FunctionCall.Name,
							Arguments: string(args),
						},
					})
					calls++
				}
			}
			out = append(out, m)
		}
	}
	return out
}

func fromChatResponse(name string, resp *deepseek.Response) (*Response, error) {
	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out, nil
	}

	choice := resp.Choices[0]
	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}
	for _, tc := range choice.Message.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("%s: decode arguments of %s: %w", name, tc.Function.Name, err)
			}
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{Name: tc.Function.Name, Args: args},
		})
	}
	return out, nil
}
