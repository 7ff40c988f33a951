package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrRetry = errors.New("retry")

// Backoff is a (blocking) function returns when to retry.
//
// # Args
//
// - context: context. If context is canceled, Backoff should return ctx.Err().
//
// # Returns
//
// - error: nil if retry, non-nil if not.
type Backoff func(context.Context) error

// StaticBackoff returns a Backoff function that waits for a fixed interval.
var StaticBackoff = func(interval time.Duration) Backoff {
	return ExponentialBackoff(interval, 1)
}

// ExponentialBackoff returns a Backoff function that waits with exponential backoff.
//
// # Args
//
// - initialInterval: initial interval.
//
// - r: multiplier of interval.
//
// # Returns
//
// Backoff function.
// For N-th call, it waits for `initialInterval * r^N` or context to be done.
var ExponentialBackoff = func(initialInterval time.Duration, r float64) Backoff {
	interval := initialInterval
	return func(ctx context.Context) error {
		if err := wait(ctx, interval); err != nil {
			return err
		}
		i := float64(interval) * r
		interval = time.Duration(int64(i))
		return nil
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Blocking calls f until it returns nil or non-retry error.
//
// Backoff is awaited before each call, including the first one.
//
// # Args
//
// - ctx: context
//
// - b: backoff function
//
// - f: function to be called. If f returns ErrRetry, Blocking calls f again after backoff.
//
// # Returns
//
// - T: last return value of f
//
// - error: error returned by f
func Blocking[T any](ctx context.Context, b Backoff, f func() (T, error)) (T, error) {
	last := *new(T)
	for {
		if err := b(ctx); err != nil {
			return last, err
		}

		var err error
		last, err = f()
		if err == nil {
			return last, nil
		}
		if errors.Is(err, ErrRetry) {
			continue
		}
		return last, err
	}
}

// Interval tells how long to wait before the next attempt.
//
// attempt is the number of attempts failed so far (1 for the first failure).
type Interval func(attempt int) time.Duration

// CappedExponential is an Interval of min(initial * 2^(attempt-1), max).
func CappedExponential(initial time.Duration, max time.Duration) Interval {
	return func(attempt int) time.Duration {
		if attempt < 1 {
			attempt = 1
		}
		d := float64(initial) * math.Pow(2, float64(attempt-1))
		if float64(max) <= d || math.IsInf(d, 0) {
			return max
		}
		return time.Duration(d)
	}
}

// Fixed is an Interval waiting for d always.
func Fixed(d time.Duration) Interval {
	return func(int) time.Duration { return d }
}

// Policy is a retry policy of fetching.
type Policy struct {
	// MaxAttempts is the number of calls at most, including the first call.
	//
	// Zero or negative value means one attempt.
	MaxAttempts int

	// Interval gives waiting time between attempts.
	//
	// nil means no wait.
	Interval Interval

	// Retryable tells whether the error is worth to retry.
	//
	// nil means all errors except context cancellation are retryable.
	Retryable func(error) bool
}

// NoRetry is a Policy calling once.
var NoRetry = Policy{MaxAttempts: 1}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

func (p Policy) interval(attempt int) time.Duration {
	if p.Interval == nil {
		return 0
	}
	return p.Interval(attempt)
}

// Do calls f until it succeeds, it returns a non-retryable error, or attempts are exhausted.
//
// # Returns
//
// - T: the value f returns at last
//
// - error: the error f returns at last, or ctx.Err() when the context is done while waiting.
func Do[T any](ctx context.Context, p Policy, f func(context.Context) (T, error)) (T, error) {
	attempts := p.attempts()
	failed := 0
	backoff := func(ctx context.Context) error {
		if failed == 0 {
			return nil
		}
		return wait(ctx, p.interval(failed))
	}
	return Blocking(ctx, backoff, func() (T, error) {
		ret, err := f(ctx)
		if err == nil {
			return ret, nil
		}
		failed += 1
		if failed < attempts && p.retryable(err) {
			return ret, fmt.Errorf("%w: %w", ErrRetry, err)
		}
		return ret, err
	})
}
