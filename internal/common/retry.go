package common

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy controls how WithRetry spaces out attempts. Zero fields take
// the defaults applied by normalize.
type RetryPolicy struct {
	Attempts   int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
}

func (p RetryPolicy) normalize() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 100 * time.Millisecond
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 30 * time.Second
	}
	if p.Multiplier <= 1 {
		p.Multiplier = 2
	}
	return p
}

// backoff hands out exponentially growing delays capped at ceiling.
type backoff struct {
	next    time.Duration
	ceiling time.Duration
	factor  float64
}

// after returns the pause to take after err. A rate limit jumps straight to
// the ceiling.
func (b *backoff) after(err error) time.Duration {
	if IsRateLimited(err) {
		b.next = b.ceiling
	}
	d := b.next
	b.next = min(time.Duration(float64(b.next)*b.factor), b.ceiling)
	return d
}

// WithRetry calls op until it succeeds, fails permanently, ctx ends or the
// policy runs out of attempts. With a single attempt the error from op is
// returned unchanged.
func WithRetry(ctx context.Context, op func() error, policy RetryPolicy) error {
	policy = policy.normalize()
	pause := &backoff{next: policy.BaseDelay, ceiling: policy.MaxDelay, factor: policy.Multiplier}

	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if policy.Attempts == 1 || ctx.Err() != nil || permanent(err) {
			return err
		}
		if attempt >= policy.Attempts {
			return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetries, attempt, err)
		}

		delay := pause.after(err)
		slog.Warn("Attempt failed, backing off",
			"attempt", attempt,
			"attempts", policy.Attempts,
			"delay", delay,
			"error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
