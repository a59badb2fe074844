package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"task-assistant/config"
	"task-assistant/internal/auth/repository/memory"
	"task-assistant/internal/auth/usecase"
	"task-assistant/internal/middleware"
	"task-assistant/pkg/encrypter"
	"task-assistant/pkg/log"
	"task-assistant/pkg/scope"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Code      string          `json:"code"`
	Data      json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	tokens, err := scope.New("test-secret")
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	uc := usecase.New(l, memory.New(), tokens, encrypter.New(bcrypt.MinCost), time.Hour)
	cfg := &config.Config{Auth: config.AuthConfig{CookieName: "session_token"}}
	mw := middleware.New(l, uc, cfg)

	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(l, uc, cfg.Auth), mw)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
	}
	return w, env
}

func TestAuthRoutes(t *testing.T) {
	r := setupRouter(t)
	creds := map[string]string{"email": "Ada@Example.com", "password": "lovelace1", "name": "Ada"}

	t.Run("sign-up validation", func(t *testing.T) {
		tests := []struct {
			body     map[string]string
			wantCode string
			status   int
		}{
			{map[string]string{"email": "nope", "password": "lovelace1"}, "INVALID_EMAIL", http.StatusBadRequest},
			{map[string]string{"email": "a@b.co", "password": "short"}, "PASSWORD_TOO_SHORT", http.StatusBadRequest},
			{map[string]string{"email": "a@b.co", "password": strings.Repeat("x", 73)}, "PASSWORD_TOO_LONG", http.StatusBadRequest},
		}
		for _, tt := range tests {
			w, env := do(t, r, http.MethodPost, "/api/auth/sign-up/email", "", tt.body)
			if w.Code != tt.status || env.Code != tt.wantCode {
				t.Errorf("%v: got %d %q, want %d %q", tt.body, w.Code, env.Code, tt.status, tt.wantCode)
			}
		}
	})

	var token string
	t.Run("sign-up sets cookie", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/auth/sign-up/email", "", creds)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var out authResp
		if err := json.Unmarshal(env.Data, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Token == "" || out.User.Email != "ada@example.com" || out.User.Name != "Ada" {
			t.Fatalf("unexpected %+v", out)
		}
		if !strings.Contains(w.Header().Get("Set-Cookie"), "session_token="+out.Token) {
			t.Errorf("cookie not set: %q", w.Header().Get("Set-Cookie"))
		}
		token = out.Token
	})

	t.Run("duplicate sign-up", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/auth/sign-up/email", "", creds)
		if w.Code != http.StatusConflict || env.Code != "USER_ALREADY_EXISTS" {
			t.Errorf("got %d %q", w.Code, env.Code)
		}
	})

	t.Run("sign-in wrong password", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/auth/sign-in/email", "",
			map[string]string{"email": "ada@example.com", "password": "babbage12"})
		if w.Code != http.StatusUnauthorized || env.Code != "INVALID_EMAIL_OR_PASSWORD" {
			t.Errorf("got %d %q", w.Code, env.Code)
		}
	})

	t.Run("sign-in", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/auth/sign-in/email", "",
			map[string]string{"email": "ada@example.com", "password": "lovelace1"})
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var out authResp
		_ = json.Unmarshal(env.Data, &out)
		if out.Token == "" {
			t.Error("missing token")
		}
	})

	t.Run("get-session", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/api/auth/get-session", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var out getSessionResp
		if err := json.Unmarshal(env.Data, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.User.Email != "ada@example.com" || out.Session.ID == "" {
			t.Errorf("unexpected %+v", out)
		}
	})

	t.Run("get-session via cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/get-session", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ada@example.com") {
			t.Errorf("got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("sign-out then get-session is null", func(t *testing.T) {
		w, _ := do(t, r, http.MethodPost, "/api/auth/sign-out", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("sign-out status %d", w.Code)
		}
		if !strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0") {
			t.Errorf("cookie not cleared: %q", w.Header().Get("Set-Cookie"))
		}

		w, env := do(t, r, http.MethodGet, "/api/auth/get-session", token, nil)
		if w.Code != http.StatusOK || string(env.Data) != "null" {
			t.Errorf("got %d %s", w.Code, env.Data)
		}

		w, _ = do(t, r, http.MethodPost, "/api/auth/sign-out", token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("repeat sign-out status %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in/email", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %d", w.Code)
		}
	})
}
