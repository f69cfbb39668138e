// Package retry runs fallible operations repeatedly with configurable
// backoff between attempts.
//
// It builds on github.com/sethvargo/go-retry, inverting its opt-in retry
// semantics: every error from the operation is retried unless it is marked
// with Permanent, which matches how retry loops are typically written around
// flaky I/O.
//
// # Usage
//
//	cfg := retry.Config{
//	    MaxAttempts: 5,
//	    Strategy:    retry.Exponential(100*time.Millisecond, 5*time.Second),
//	    Jitter:      50 * time.Millisecond,
//	}
//
//	err := retry.Do(ctx, cfg, func(ctx context.Context) error {
//	    resp, err := client.Fetch(ctx, url)
//	    if errors.Is(err, ErrBadRequest) {
//	        return retry.Permanent(err) // retrying cannot help
//	    }
//	    if err != nil {
//	        return err // retried with backoff
//	    }
//	    return handle(resp)
//	})
//
// The zero Config is usable: three attempts with exponential backoff
// starting at 100ms.
//
// # Strategies
//
//   - NoDelay – immediate retries
//   - Constant – fixed delay
//   - Linear – delay grows by a fixed increment, capped
//   - Exponential – delay doubles, capped
//
// Strategies are factories: each Do call gets a fresh backoff schedule, so a
// Config may be shared freely across goroutines.
//
// Cancellation is honored between attempts: when ctx is done, Do returns the
// context error without invoking the operation again.
package retry
