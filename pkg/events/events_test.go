package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSubject(t *testing.T) {
	if got := Subject("activity", TaskCreated); got != "activity.tasks.created" {
		t.Errorf("unexpected subject %q", got)
	}
}

func TestEventJSON(t *testing.T) {
	evt := Event{
		Type:       TaskToggled,
		UserID:     "u1",
		TaskID:     "t1",
		OccurredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"type":"tasks.toggled"`, `"user_id":"u1"`, `"task_id":"t1"`, `"occurred_at":"2025-01-02T03:04:05Z"`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
	if strings.Contains(s, "session_id") {
		t.Errorf("empty session_id must be omitted: %s", s)
	}
}

func TestNopPublisher(t *testing.T) {
	p := NewNop()
	if err := p.Publish(context.Background(), Event{Type: TaskCreated}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
