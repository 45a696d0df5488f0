package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		wantErr   error
		name      string
		failures  []error
		opts      RetryPolicy
		wantCalls int
	}{
		{
			name:      "succeeds first time",
			opts:      RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond},
			wantCalls: 1,
		},
		{
			name:      "single attempt returns error unchanged",
			opts:      RetryPolicy{Attempts: 1},
			failures:  []error{errBoom},
			wantCalls: 1,
			wantErr:   errBoom,
		},
		{
			name:      "zero attempts means one",
			failures:  []error{errBoom},
			wantCalls: 1,
			wantErr:   errBoom,
		},
		{
			name:      "retries then succeeds",
			opts:      RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond},
			failures:  []error{errBoom, errBoom},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			opts:      RetryPolicy{Attempts: 2, BaseDelay: time.Millisecond},
			failures:  []error{errBoom, errBoom, errBoom},
			wantCalls: 2,
			wantErr:   ErrMaxRetries,
		},
		{
			name: "non-retryable stops immediately",
			opts: RetryPolicy{Attempts: 5, BaseDelay: time.Millisecond},
			failures: []error{
				&RetryableError{Err: errBoom, Retryable: false},
			},
			wantCalls: 1,
			wantErr:   errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			}, tt.opts)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := WithRetry(ctx, func() error {
		calls++
		return errors.New("still failing")
	}, RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("503"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("401"), Retryable: false}))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}

func TestBackoff(t *testing.T) {
	b := &backoff{next: time.Second, ceiling: 5 * time.Second, factor: 2}
	errBoom := errors.New("boom")

	assert.Equal(t, time.Second, b.after(errBoom))
	assert.Equal(t, 2*time.Second, b.after(errBoom))
	assert.Equal(t, 4*time.Second, b.after(errBoom))
	assert.Equal(t, 5*time.Second, b.after(errBoom), "capped at ceiling")

	b = &backoff{next: time.Second, ceiling: 5 * time.Second, factor: 2}
	assert.Equal(t, 5*time.Second, b.after(fmt.Errorf("429: %w", ErrRateLimit)))
}

func TestRetryPolicyNormalize(t *testing.T) {
	p := RetryPolicy{}.normalize()
	assert.Equal(t, 1, p.Attempts)
	assert.Equal(t, 100*time.Millisecond, p.BaseDelay)
	assert.Equal(t, 30*time.Second, p.MaxDelay)
	assert.InEpsilon(t, 2.0, p.Multiplier, 0.001)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"key":"value"`)

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}
