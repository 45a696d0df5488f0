package llm

import (
	"context"
	"errors"
	"time"
)

// DefaultMaxTokens is the output budget for a single completion.
const DefaultMaxTokens = 1000

// ErrMissingAPIKey is returned when a provider that needs a key has none.
var ErrMissingAPIKey = errors.New("API key is required")

// Client defines the interface for LLM providers.
type Client interface {
	// Complete sends one system instruction and one user turn and returns
	// the text of the reply.
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is a single-turn completion request.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Config holds configuration for LLM clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}
