// Package common holds the logging, error and retry helpers shared by every
// pockit package.
package common

import (
	"context"
	"errors"
)

var (
	// ErrMissingConfig marks a required setting that was not provided.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig marks a setting whose value cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRateLimit is wrapped by provider errors for HTTP 429 responses.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrMaxRetries is returned once a RetryPolicy runs out of attempts.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// RetryableError tags a provider failure as transient or permanent.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is known to be transient. Untagged errors
// are treated as permanent.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case IsRateLimited(err), errors.Is(err, context.DeadlineExceeded):
		return true
	}

	var tagged *RetryableError
	return errors.As(err, &tagged) && tagged.Retryable
}

// IsRateLimited reports whether err wraps ErrRateLimit.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimit)
}

// permanent reports whether err was explicitly tagged as not worth retrying.
func permanent(err error) bool {
	var tagged *RetryableError
	return errors.As(err, &tagged) && !tagged.Retryable
}
