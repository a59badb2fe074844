package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-assistant/config"
	"task-assistant/internal/model"
	"task-assistant/pkg/log"
)

type fakeResolver struct {
	tokens map[string]model.Scope
}

func (f fakeResolver) ResolveSession(ctx context.Context, token string) (model.Scope, error) {
	sc, ok := f.tokens[token]
	if !ok {
		return model.Scope{}, errors.New("unknown token")
	}
	return sc, nil
}

func newTestMiddleware(rateLimit int) Middleware {
	cfg := &config.Config{}
	cfg.Auth.CookieName = "session_token"
	cfg.CORS.AllowedOrigins = []string{"http://app.test"}
	if rateLimit > 0 {
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerM: rateLimit}
	}
	return New(log.NewNop(), fakeResolver{tokens: map[string]model.Scope{
		"good": {UserID: "u1", Email: "a@b.c", SessionID: "s1"},
	}}, cfg)
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
		wantBody   string
	}{
		{"no token", func(req *http.Request) {}, http.StatusUnauthorized, ""},
		{"bad token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer bad") }, http.StatusUnauthorized, ""},
		{"bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") }, http.StatusOK, "u1"},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "session_token", Value: "good"}) }, http.StatusOK, "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://app.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://app.test" {
			t.Errorf("missing allow-origin header")
		}
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Errorf("unexpected allow-origin header")
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 10 per minute gives a burst of 1.
	mw := newTestMiddleware(10)

	r := gin.New()
	r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	r := gin.New()
	r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d throttled while disabled", i)
		}
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	r := gin.New()
	r.Use(mw.RequestLogger())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Body.String() == "" || w.Header().Get("X-Request-ID") != w.Body.String() {
		t.Errorf("request id not propagated: header=%q body=%q", w.Header().Get("X-Request-ID"), w.Body.String())
	}
}
