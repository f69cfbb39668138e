package retry

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// Strategy produces a fresh backoff schedule for one Do call. Backoff state
// (attempt counters) lives inside the produced value, so a single Config can
// be reused across calls and goroutines.
type Strategy func() retry.Backoff

// Config controls retry behavior.
type Config struct {
	// MaxAttempts is the total number of tries including the first one.
	// Zero means DefaultMaxAttempts.
	MaxAttempts uint64

	// Strategy determines the delay between attempts. Nil means exponential
	// backoff starting at 100ms capped at 30s.
	Strategy Strategy

	// Jitter adds a random duration in [-Jitter, Jitter] to every delay to
	// avoid thundering herds. Zero disables jitter.
	Jitter time.Duration
}

// DefaultMaxAttempts is used when Config.MaxAttempts is zero.
const DefaultMaxAttempts = 3

// NoDelay retries immediately without waiting.
func NoDelay() Strategy {
	return func() retry.Backoff {
		return retry.BackoffFunc(func() (time.Duration, bool) {
			return 0, false
		})
	}
}

// Constant waits the same duration between every attempt.
func Constant(d time.Duration) Strategy {
	return func() retry.Backoff {
		return retry.NewConstant(d)
	}
}

// Linear grows the delay by increment after each attempt, up to max.
// A non-positive max leaves the delay uncapped.
func Linear(initial, increment, max time.Duration) Strategy {
	return func() retry.Backoff {
		var attempt int
		return retry.BackoffFunc(func() (time.Duration, bool) {
			d := initial + time.Duration(attempt)*increment
			attempt++
			if max > 0 && d > max {
				d = max
			}
			return d, false
		})
	}
}

// Exponential doubles the delay after each attempt, starting at initial and
// capped at max. A non-positive max leaves the delay uncapped.
func Exponential(initial, max time.Duration) Strategy {
	return func() retry.Backoff {
		b := retry.NewExponential(initial)
		if max > 0 {
			b = retry.WithCappedDuration(max, b)
		}
		return b
	}
}

func defaultStrategy() Strategy {
	return Exponential(100*time.Millisecond, 30*time.Second)
}

// Do runs f until it succeeds, permanently fails, the attempt budget is
// exhausted, or ctx is done. Any error returned by f triggers a retry unless
// it is wrapped with Permanent. The returned error wraps the last attempt's
// error, so errors.Is and errors.As see through it.
func Do(ctx context.Context, cfg Config, f func(ctx context.Context) error) error {
	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = DefaultMaxAttempts
	}

	strategy := cfg.Strategy
	if strategy == nil {
		strategy = defaultStrategy()
	}

	b := strategy()
	if cfg.Jitter > 0 {
		b = retry.WithJitter(cfg.Jitter, b)
	}
	b = retry.WithMaxRetries(attempts-1, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := f(ctx)
		if err == nil {
			return nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		return retry.RetryableError(err)
	})
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as non-retryable: Do stops immediately and returns the
// original error. A nil err returns nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}
