package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/pockit/internal/common"
)

// Providers lists the accepted values of Config.Provider.
var Providers = []string{"anthropic", "openai"}

// SupportedProvider reports whether provider names a known client. The empty
// string selects anthropic.
func SupportedProvider(provider string) bool {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return true
	}
	for _, p := range Providers {
		if p == provider {
			return true
		}
	}
	return false
}

// NewClient creates a raw LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "anthropic":
		client, err := newAnthropicClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "openai":
		client, err := newOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// ResilientClient wraps a Client with rate limiting and retries.
type ResilientClient struct {
	client      Client
	rateLimiter *rateLimiter
	retry       common.RetryPolicy
}

// NewResilientClient wraps client using the retry and rate settings in cfg.
// A MaxRetries of zero or one disables retrying.
func NewResilientClient(client Client, cfg Config) *ResilientClient {
	delay := cfg.RetryDelay
	if delay == 0 {
		delay = time.Second
	}

	return &ResilientClient{
		client:      client,
		rateLimiter: newRateLimiter(cfg.RateLimit),
		retry: common.RetryPolicy{
			Attempts:  cfg.MaxRetries,
			BaseDelay: delay,
			MaxDelay:  30 * time.Second,
		},
	}
}

// Complete waits for a rate-limit token and then calls the wrapped client,
// retrying retryable failures.
func (c *ResilientClient) Complete(ctx context.Context, req Request) (string, error) {
	var text string
	err := common.WithRetry(ctx, func() error {
		if err := c.rateLimiter.wait(ctx); err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}
		var err error
		text, err = c.client.Complete(ctx, req)
		return err
	}, c.retry)
	if err != nil {
		return "", err
	}
	return text, nil
}

// New builds the configured provider wrapped in a ResilientClient.
func New(cfg Config) (*ResilientClient, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewResilientClient(client, cfg), nil
}
