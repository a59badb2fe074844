package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-assistant/pkg/log"
)

// mockProvider fails the first failures calls, then returns response.
type mockProvider struct {
	name      string
	failures  int
	response  *Response
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.callCount <= m.failures {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func textResponse(text string) *Response {
	return &Response{Content: Message{Role: RoleAssistant, Parts: []Part{{Text: text}}}}
}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: text}}}}}
}

func TestManager_GenerateContent(t *testing.T) {
	const always = 1 << 30

	tests := []struct {
		name          string
		providers     []*mockProvider
		cfg           Config
		wantText      string
		wantErr       error
		wantCallCount []int
	}{
		{
			name:          "primary succeeds",
			providers:     []*mockProvider{{name: "p", response: textResponse("hi")}, {name: "s", response: textResponse("no")}},
			cfg:           Config{FallbackEnabled: true, RetryAttempts: 3},
			wantText:      "hi",
			wantCallCount: []int{1, 0},
		},
		{
			name:          "primary recovers on retry",
			providers:     []*mockProvider{{name: "p", failures: 1, response: textResponse("second try")}},
			cfg:           Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantText:      "second try",
			wantCallCount: []int{2},
		},
		{
			name:          "falls back to secondary",
			providers:     []*mockProvider{{name: "p", failures: always}, {name: "s", response: textResponse("backup")}},
			cfg:           Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantText:      "backup",
			wantCallCount: []int{2, 1},
		},
		{
			name:          "all fail",
			providers:     []*mockProvider{{name: "p", failures: always}, {name: "s", failures: always}},
			cfg:           Config{FallbackEnabled: true, RetryAttempts: 1},
			wantErr:       ErrAllProvidersFailed,
			wantCallCount: []int{1, 1},
		},
		{
			name:          "no fallback when disabled",
			providers:     []*mockProvider{{name: "p", failures: always}, {name: "s", response: textResponse("unused")}},
			cfg:           Config{FallbackEnabled: false, RetryAttempts: 1},
			wantErr:       ErrAllProvidersFailed,
			wantCallCount: []int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]Provider, len(tt.providers))
			for i, p := range tt.providers {
				providers[i] = p
			}
			cfg := tt.cfg
			m := NewManager(providers, &cfg, log.NewNop())

			resp, err := m.GenerateContent(context.Background(), userRequest("hello"))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Text() != tt.wantText {
					t.Errorf("expected %q, got %q", tt.wantText, resp.Text())
				}
				if resp.Usage == nil {
					t.Error("usage must never be nil")
				}
			}

			for i, want := range tt.wantCallCount {
				if tt.providers[i].callCount != want {
					t.Errorf("provider %d: expected %d calls, got %d", i, want, tt.providers[i].callCount)
				}
			}
		})
	}
}

func TestManager_NoProviders(t *testing.T) {
	m := NewManager(nil, &Config{}, log.NewNop())
	if _, err := m.GenerateContent(context.Background(), userRequest("x")); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManager_EmptyRequest(t *testing.T) {
	m := NewManager([]Provider{&mockProvider{name: "p"}}, &Config{}, log.NewNop())
	if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestManager_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", failures: 1 << 30}
	m := NewManager([]Provider{slow, &mockProvider{name: "s", response: textResponse("late")}}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   5,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, log.NewNop())

	_, err := m.GenerateContent(context.Background(), userRequest("x"))
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestResponseHelpers(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{
		{Text: "a"},
		{FunctionCall: &FunctionCall{Name: "list_tasks"}},
		{Text: "b"},
	}}}
	if resp.Text() != "ab" {
		t.Errorf("unexpected text %q", resp.Text())
	}
	if calls := resp.FunctionCalls(); len(calls) != 1 || calls[0].Name != "list_tasks" {
		t.Errorf("unexpected calls %v", calls)
	}
}
