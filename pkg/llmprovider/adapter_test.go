package llmprovider

import (
	"context"
	"testing"

	"task-assistant/config"
	"task-assistant/pkg/deepseek"
	"task-assistant/pkg/gemini"
	"task-assistant/pkg/log"
)

type fakeChatClient struct {
	got  *deepseek.Request
	resp *deepseek.Response
}

func (f *fakeChatClient) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	return f.resp, nil
}

func (f *fakeChatClient) Model() string { return "fake-chat" }

type fakeGemini struct {
	got  *gemini.Request
	resp *gemini.Response
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return f.resp, nil
}

func (f *fakeGemini) Model() string { return "fake-gemini" }

func conversation() *Request {
	return &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "system prompt"}}},
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "finish task 2"}}},
			{Role: RoleAssistant, Parts: []Part{{FunctionCall: &FunctionCall{Name: "complete_task", Args: map[string]interface{}{"task_index": 2}}}}},
			{Role: RoleFunction, Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "complete_task", Response: map[string]interface{}{"status": "success"}}}}},
		},
		Tools: []Tool{{Name: "complete_task", Description: "Complete a task"}},
	}
}

func TestOpenAICompatAdapter(t *testing.T) {
	fake := &fakeChatClient{resp: &deepseek.Response{
		Model: "qwen-plus",
		Choices: []deepseek.Choice{{Message: deepseek.Message{
			Role: "assistant",
			ToolCalls: []deepseek.ToolCall{{
				ID: "x", Type: "function",
				Function: deepseek.FunctionCall{Name: "list_tasks", Arguments: `{"status":"all"}`},
			}},
		}}},
		Usage: deepseek.Usage{PromptTokens: 4, CompletionTokens: 1, TotalTokens: 5},
	}}
	a := NewOpenAICompatAdapter("qwen", fake)

	resp, err := a.GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	msgs := fake.got.Messages
	if len(msgs) != 4 {
		t.Fatalf("expected system+3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[0].Content != "system prompt" {
		t.Errorf("unexpected system message %+v", msgs[0])
	}
	if len(msgs[2].ToolCalls) != 1 || msgs[3].Role != "tool" || msgs[3].ToolCallID != msgs[2].ToolCalls[0].ID {
		t.Errorf("tool call and tool response are not paired: %+v / %+v", msgs[2], msgs[3])
	}
	if len(fake.got.Tools) != 1 || fake.got.Tools[0].Type != "function" {
		t.Errorf("unexpected tools %+v", fake.got.Tools)
	}

	calls := resp.FunctionCalls()
	if len(calls) != 1 || calls[0].Args["status"] != "all" {
		t.Errorf("unexpected calls %+v", calls)
	}
	if resp.ProviderName != "qwen" || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected metadata %+v", resp)
	}
}

func TestOpenAICompatAdapter_BadArguments(t *testing.T) {
	fake := &fakeChatClient{resp: &deepseek.Response{Choices: []deepseek.Choice{{Message: deepseek.Message{
		ToolCalls: []deepseek.ToolCall{{Function: deepseek.FunctionCall{Name: "add_task", Arguments: "{not json"}}},
	}}}}}
	if _, err := NewOpenAICompatAdapter("deepseek", fake).GenerateContent(context.Background(), userRequest("x")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGeminiAdapter(t *testing.T) {
	fake := &fakeGemini{resp: &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "Done."}}},
		Usage:   &gemini.Usage{InputTokens: 2, OutputTokens: 1, TotalTokens: 3},
	}}
	a := NewGeminiAdapter(fake)

	resp, err := a.GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	roles := []string{}
	for _, m := range fake.got.Messages {
		roles = append(roles, m.Role)
	}
	if len(roles) != 3 || roles[0] != "user" || roles[1] != "model" || roles[2] != "user" {
		t.Errorf("unexpected gemini roles %v", roles)
	}
	if fake.got.SystemInstruction == nil || fake.got.SystemInstruction.Parts[0].Text != "system prompt" {
		t.Error("system instruction not forwarded")
	}
	if resp.Text() != "Done." || resp.Content.Role != RoleAssistant || resp.Usage.TotalTokens != 3 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-2.5-flash"},
		{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "qwen-plus"},
		{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "k", Model: "deepseek-chat"},
		{Name: "mystery", Enabled: true, Priority: 4, APIKey: "k", Model: "m"},
	}}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "gemini" {
		t.Errorf("unexpected order %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := NewManagerFromConfig(context.Background(), &config.LLMConfig{}, log.NewNop())
	if err != ErrNoProvidersConfigured {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}
