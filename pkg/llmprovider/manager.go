package llmprovider

import (
	"context"
	"fmt"
	"time"

	"task-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with linear backoff.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			if resp.Usage == nil {
				resp.Usage = &Usage{}
			}
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "llmprovider.GenerateContent: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.GenerateContent: provider=%s model=%s failed: %v",
		provider.Name(), provider.Model(), err)
}
