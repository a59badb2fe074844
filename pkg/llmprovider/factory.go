package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"task-assistant/config"
	"task-assistant/pkg/deepseek"
	"task-assistant/pkg/gemini"
	"task-assistant/pkg/log"
)

// NewManagerFromConfig builds a Manager from the llm config section.
// It returns ErrNoProvidersConfigured when no provider is enabled.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 60*time.Second),
	}, l), nil
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers are sorted by priority (ascending) and disabled ones are skipped.
// A provider that fails to initialize is logged and skipped.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skip provider %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	timeout := parseDuration(cfg.Timeout, 0)

	switch strings.ToLower(cfg.Name) {
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewOpenAICompatAdapter("deepseek", client), nil

	case "qwen", "alibaba":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = deepseek.QwenCompatibleBaseURL
		}
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewOpenAICompatAdapter("qwen", client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
