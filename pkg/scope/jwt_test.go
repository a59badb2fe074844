package scope

import (
	"errors"
	"testing"
	"time"
)

func TestNew_EmptySecret(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestCreateAndVerify(t *testing.T) {
	m, err := New("secret")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := m.CreateToken(Payload{UserID: "u1", Email: "a@b.c", SessionID: "s1"}, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.UserID != "u1" || got.Email != "a@b.c" || got.SessionID != "s1" {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestVerify_Failures(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := &jwtManager{secret: []byte("secret"), issuer: "task-assistant", now: func() time.Time { return base }}
	token, err := issuer.CreateToken(Payload{UserID: "u1", SessionID: "s1"}, time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	t.Run("expired", func(t *testing.T) {
		later := &jwtManager{secret: []byte("secret"), issuer: "task-assistant", now: func() time.Time { return base.Add(time.Hour) }}
		if _, err := later.Verify(token); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := &jwtManager{secret: []byte("other"), issuer: "task-assistant", now: func() time.Time { return base }}
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing session id", func(t *testing.T) {
		noSid, err := issuer.CreateToken(Payload{UserID: "u1"}, time.Minute)
		if err != nil {
			t.Fatalf("CreateToken: %v", err)
		}
		if _, err := issuer.Verify(noSid); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
