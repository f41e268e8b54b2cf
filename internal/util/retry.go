package util

import (
	"context"
	"time"
)

// RetryOutcome tags how a Retry call ended.
type RetryOutcome int

const (
	// RetrySucceeded means an attempt returned without error.
	RetrySucceeded RetryOutcome = iota
	// RetryExhausted means every allowed attempt failed with a retryable error.
	RetryExhausted
	// RetryAborted means an attempt failed with a non-retryable error or the context ended.
	RetryAborted
)

// String implements fmt.Stringer
func (o RetryOutcome) String() string {
	switch o {
	case RetrySucceeded:
		return "succeeded"
	case RetryExhausted:
		return "exhausted"
	case RetryAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RetryPolicy bounds a Retry call.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration

	// Retryable decides whether a failed attempt may be retried. Nil retries everything.
	Retryable func(error) bool

	// Sleep waits between attempts. Nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// RetryResult is the tagged result of Retry. Err holds the last failure.
type RetryResult[T any] struct {
	Value    T
	Outcome  RetryOutcome
	Attempts int
	Err      error
}

// Retry calls fn until it succeeds, fails with a non-retryable error, or the
// attempt bound is reached, waiting a fixed delay between attempts.
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error)) RetryResult[T] {
	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	sleep := policy.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	var result RetryResult[T]
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt

		value, err := fn(ctx)
		if err == nil {
			result.Value = value
			result.Outcome = RetrySucceeded
			result.Err = nil

			return result
		}
		result.Err = err

		if policy.Retryable != nil && !policy.Retryable(err) {
			result.Outcome = RetryAborted

			return result
		}

		if attempt == maxAttempts {
			break
		}

		if err := sleep(ctx, policy.Delay); err != nil {
			result.Outcome = RetryAborted
			result.Err = err

			return result
		}
	}

	result.Outcome = RetryExhausted

	return result
}

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
