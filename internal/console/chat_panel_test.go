package console

import (
	"context"
	"testing"

	"task-assistant/pkg/taskapi"
)

func TestChatPanel_SessionThreading(t *testing.T) {
	api := newFakeAPI()
	p := NewChatPanel(api)
	ctx := context.Background()

	if _, err := p.Send(ctx, "hello"); err != nil {
		t.Fatal(err)
	}
	if p.SessionID() != "s-1" {
		t.Fatalf("session id = %q, want s-1", p.SessionID())
	}
	if _, err := p.Send(ctx, "list my tasks"); err != nil {
		t.Fatal(err)
	}

	if len(api.sentSessions) != 2 || api.sentSessions[0] != "" || api.sentSessions[1] != "s-1" {
		t.Errorf("sent sessions = %v, want [\"\" s-1]", api.sentSessions)
	}

	msgs := p.Messages()
	if len(msgs) != 4 {
		t.Fatalf("messages = %d, want 4", len(msgs))
	}
	wantIDs := []string{"u1", "a1", "u2", "a2"}
	for i, m := range msgs {
		if m.ID != wantIDs[i] {
			t.Errorf("message %d id = %q, want %q", i, m.ID, wantIDs[i])
		}
	}
	if msgs[1].Sender != taskapi.SenderAgent || msgs[0].Sender != taskapi.SenderUser {
		t.Error("senders out of order")
	}
}

func TestChatPanel_Resume(t *testing.T) {
	api := newFakeAPI()
	p := NewChatPanel(api)
	p.Resume("s-old", []taskapi.ChatMessage{{ID: "m1", Sender: taskapi.SenderUser, MessageText: "hi"}})

	if _, err := p.Send(context.Background(), "again"); err != nil {
		t.Fatal(err)
	}
	if api.sentSessions[0] != "s-old" || p.SessionID() != "s-old" {
		t.Errorf("resumed session not used: sent %v", api.sentSessions)
	}
	if len(p.Messages()) != 3 {
		t.Errorf("messages = %d, want 3", len(p.Messages()))
	}
}

func TestChatPanel_Errors(t *testing.T) {
	api := newFakeAPI()
	p := NewChatPanel(api)
	ctx := context.Background()

	if _, err := p.Send(ctx, "   "); err != ErrEmptyMessage {
		t.Errorf("blank send error = %v, want ErrEmptyMessage", err)
	}
	if len(api.sentSessions) != 0 {
		t.Error("blank message reached the API")
	}

	api.chatErr = &taskapi.APIError{StatusCode: 429, Code: taskapi.CodeRateLimited}
	if _, err := p.Send(ctx, "hello"); err == nil {
		t.Fatal("expected error")
	}
	if p.Error() == "" || p.IsLoading() {
		t.Errorf("error = %q loading = %v", p.Error(), p.IsLoading())
	}
	if len(p.Messages()) != 0 {
		t.Errorf("failed message kept: %+v", p.Messages())
	}
	if p.SessionID() != "" {
		t.Error("session adopted from a failed send")
	}

	p.DismissError()
	if p.Error() != "" {
		t.Error("DismissError did not clear")
	}

	api.chatErr = &taskapi.APIError{StatusCode: 500, Message: "boom"}
	_, _ = p.Send(ctx, "hello")
	api.chatErr = nil
	if _, err := p.Send(ctx, "hello"); err != nil {
		t.Fatal(err)
	}
	if p.Error() != "" {
		t.Errorf("error not cleared by a successful send: %q", p.Error())
	}
}

func TestChatPanel_TasksChangedHook(t *testing.T) {
	api := newFakeAPI()
	p := NewChatPanel(api)
	calls := 0
	p.OnTasksChanged = func(context.Context) { calls++ }

	_, _ = p.Send(context.Background(), "hello")
	_, _ = p.Send(context.Background(), "add milk")
	if calls != 1 {
		t.Errorf("OnTasksChanged calls = %d, want 1", calls)
	}
}
