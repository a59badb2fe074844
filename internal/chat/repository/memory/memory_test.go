package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	repo "task-assistant/internal/chat/repository"
	"task-assistant/internal/model"
)

func TestSessions(t *testing.T) {
	ctx := context.Background()
	r := New()

	a, _ := r.CreateSession(ctx, "u1")
	b, _ := r.CreateSession(ctx, "u1")
	_, _ = r.CreateSession(ctx, "u2")

	if got, _ := r.GetSession(ctx, repo.GetSessionOptions{ID: a.ID, UserID: "u2"}); got.ID != "" {
		t.Errorf("foreign session visible: %+v", got)
	}

	if err := r.TouchSession(ctx, a.ID, time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("TouchSession: %v", err)
	}
	list, _ := r.ListSessions(ctx, "u1")
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Errorf("unexpected order %+v", list)
	}
}

func TestListMessagesKeepsNewestOldestFirst(t *testing.T) {
	ctx := context.Background()
	r := New()
	s, _ := r.CreateSession(ctx, "u1")

	for i := 1; i <= 5; i++ {
		if _, err := r.CreateMessage(ctx, repo.CreateMessageOptions{SessionID: s.ID, Text: fmt.Sprint(i), Sender: model.SenderUser}); err != nil {
			t.Fatalf("CreateMessage: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  []string
	}{
		{3, []string{"3", "4", "5"}},
		{10, []string{"1", "2", "3", "4", "5"}},
		{0, []string{"1", "2", "3", "4", "5"}},
	}
	for _, tt := range tests {
		got, _ := r.ListMessages(ctx, repo.ListMessagesOptions{SessionID: s.ID, Limit: tt.limit})
		if len(got) != len(tt.want) {
			t.Fatalf("limit %d: got %d messages", tt.limit, len(got))
		}
		for i, m := range got {
			if m.Text != tt.want[i] {
				t.Errorf("limit %d: message %d = %q, want %q", tt.limit, i, m.Text, tt.want[i])
			}
		}
	}
}
