package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func loadYAML(t *testing.T, body string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadConfig(strings.NewReader(body)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return fromViper(v)
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := loadYAML(t, "auth:\n  jwt_secret: s3cret\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Driver != StorageMemory {
		t.Errorf("expected memory driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Auth.SessionTTL != 168*time.Hour {
		t.Errorf("expected 7d session ttl, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.CookieName != "session_token" {
		t.Errorf("unexpected cookie name %q", cfg.Auth.CookieName)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.LLM.HasEnabledProvider() {
		t.Error("no provider should be enabled by default")
	}
}

func TestFromViper_Providers(t *testing.T) {
	body := `
auth:
  jwt_secret: s3cret
cors:
  allowed_origins:
    - http://a.test
    - http://b.test
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: key-1
      model: gemini-2.0-flash
    - name: deepseek
      enabled: false
      priority: 2
      model: deepseek-chat
`
	cfg, err := loadYAML(t, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if !cfg.LLM.HasEnabledProvider() {
		t.Error("expected an enabled provider")
	}
	if cfg.LLM.Providers[0].APIKey != "key-1" || cfg.LLM.Providers[0].Priority != 1 {
		t.Errorf("unexpected provider %+v", cfg.LLM.Providers[0])
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing jwt secret", "storage:\n  driver: memory\n"},
		{"postgres without dsn", "auth:\n  jwt_secret: x\nstorage:\n  driver: postgres\n"},
		{"unknown driver", "auth:\n  jwt_secret: x\nstorage:\n  driver: mongo\n"},
		{"nats without url", "auth:\n  jwt_secret: x\nnats:\n  enabled: true\n"},
		{"duplicate priority", `
auth:
  jwt_secret: x
llm:
  providers:
    - {name: a, enabled: true, priority: 1, model: m}
    - {name: b, enabled: true, priority: 1, model: m}
`},
		{"provider without model", `
auth:
  jwt_secret: x
llm:
  providers:
    - {name: a, enabled: true, priority: 1}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadYAML(t, tt.body); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected %v", got)
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TASK_TEST_KEY", "from-env")
	v := viper.New()

	if got := expandEnvVar(v, "${TASK_TEST_KEY}"); got != "from-env" {
		t.Errorf("expected from-env, got %q", got)
	}
	if got := expandEnvVar(v, "plain"); got != "plain" {
		t.Errorf("expected plain, got %q", got)
	}
}
