package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-assistant/config"
	"task-assistant/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	cfg := &config.Config{}
	cfg.HTTPServer = config.HTTPServerConfig{Port: 8080, Mode: gin.TestMode}
	cfg.Environment.Name = "test"
	cfg.Storage.Driver = config.StorageMemory
	cfg.Auth = config.AuthConfig{
		JWTSecret:  "test-secret",
		SessionTTL: time.Hour,
		BcryptCost: 4,
		CookieName: "session_token",
	}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	srv, err := New(log.NewNop(), Config{Config: cfg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Code      string          `json:"code"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, srv *HTTPServer, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{}); err == nil {
		t.Error("expected error without config")
	}

	cfg := &config.Config{}
	cfg.HTTPServer = config.HTTPServerConfig{Port: 8080, Mode: gin.TestMode}
	cfg.Storage.Driver = config.StoragePostgres
	cfg.Auth.JWTSecret = "x"
	if _, err := New(log.NewNop(), Config{Config: cfg}); err == nil {
		t.Error("expected error for postgres driver without a pool")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			code, env := do(t, srv, http.MethodGet, path, "", nil)
			if code != http.StatusOK {
				t.Fatalf("status = %d, want 200", code)
			}
			if !strings.Contains(string(env.Data), ServiceName) {
				t.Errorf("data = %s, want service name", env.Data)
			}
		})
	}
}

func TestReadyCheck_StorageDown(t *testing.T) {
	srv := newTestServer(t)
	srv.readiness = append(srv.readiness, func(context.Context) error { return errors.New("down") })

	code, env := do(t, srv, http.MethodGet, "/ready", "", nil)
	if code != http.StatusServiceUnavailable || env.Code != "NOT_READY" {
		t.Errorf("got %d %q, want 503 NOT_READY", code, env.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/tasks", "/api/chat/sessions"} {
		code, _ := do(t, srv, http.MethodGet, path, "", nil)
		if code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, code)
		}
	}
}

func TestSignUpTaskAndChatFlow(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodPost, "/api/auth/sign-up/email", "", map[string]string{
		"email": "ana@example.com", "password": "supersecret", "name": "Ana",
	})
	if code != http.StatusOK {
		t.Fatalf("sign-up status = %d", code)
	}
	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil || auth.Token == "" {
		t.Fatalf("sign-up data = %s", env.Data)
	}

	code, _ = do(t, srv, http.MethodPost, "/api/tasks", auth.Token, map[string]string{"title": "Pay rent"})
	if code != http.StatusOK {
		t.Fatalf("create task status = %d", code)
	}

	code, env = do(t, srv, http.MethodPost, "/api/chat", auth.Token, map[string]string{"message": "add buy milk"})
	if code != http.StatusOK {
		t.Fatalf("chat status = %d", code)
	}
	var reply struct {
		SessionID    string `json:"session_id"`
		Reply        string `json:"reply"`
		TasksChanged bool   `json:"tasks_changed"`
	}
	if err := json.Unmarshal(env.Data, &reply); err != nil {
		t.Fatal(err)
	}
	if reply.SessionID == "" || !reply.TasksChanged {
		t.Errorf("reply = %+v", reply)
	}
	if !strings.HasPrefix(reply.Reply, "✓ Added task 2") {
		t.Errorf("reply text = %q", reply.Reply)
	}

	code, env = do(t, srv, http.MethodGet, "/api/tasks", auth.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("list status = %d", code)
	}
	var list struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(env.Data, &list)
	if list.Total != 2 {
		t.Errorf("total = %d, want 2", list.Total)
	}

	code, _ = do(t, srv, http.MethodPost, "/api/auth/sign-out", auth.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("sign-out status = %d", code)
	}
	code, _ = do(t, srv, http.MethodGet, "/api/tasks", auth.Token, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("after sign-out status = %d, want 401", code)
	}
}
