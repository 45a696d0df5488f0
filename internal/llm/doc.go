// Package llm provides language model clients for classifying chat messages.
// It supports Anthropic and OpenAI-compatible providers, with optional retry
// and rate limiting around any client.
package llm
