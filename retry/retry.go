// Package retry runs operations again after transient failures, with
// exponential backoff, jitter, and context cancellation.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Config bounds the retry loop.
type Config struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// InitialDelay is the wait before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration

	// Multiplier scales the delay after each failed attempt.
	Multiplier float64

	// Jitter is the fraction of each delay randomized away so
	// concurrent callers do not retry in lockstep. Between 0 and 1.
	Jitter float64
}

// DefaultConfig suits short HTTP fetches.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 250 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	Jitter:       0.2,
}

// IsRetryable reports whether an error is worth another attempt.
type IsRetryable func(error) bool

// Do runs fn up to cfg.MaxAttempts times. A nil error returns the
// result immediately and a non-retryable error returns as-is;
// exhausting the budget wraps the last error. Cancelling ctx stops
// the loop between attempts.
func Do[T any](ctx context.Context, cfg Config, retryable IsRetryable, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	delay := cfg.InitialDelay
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-time.After(withJitter(delay, cfg.Jitter)):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return zero, fmt.Errorf("giving up after %d attempts: %w", cfg.MaxAttempts, lastErr)
}

// withJitter shaves off a random share of the delay, up to fraction.
func withJitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	if fraction > 1 {
		fraction = 1
	}
	return d - time.Duration(rand.Float64()*fraction*float64(d))
}
