// Package resilience provides retry-with-backoff and timeout wrapping for
// fallible operations expressed as Results.
package resilience

import (
	"context"
	"math"
	"time"

	"github.com/faultline-dev/faultline/results"
	"github.com/faultline-dev/faultline/serviceerr"
)

// Operation is a fallible step submitted to RetryWithBackoff.
type Operation[T any] func(ctx context.Context) results.Result[T]

// RetryWithBackoff runs op up to opts.MaxAttempts times sequentially,
// returning the first success immediately.  After failed attempt n (except
// the last) it sleeps BaseDelay * Multiplier^(n-1), so delays grow
// exponentially starting from attempt one.
//
// If every attempt fails the result is a serviceerr failure with code
// MAX_RETRIES_EXCEEDED whose details record the attempt budget and whose
// cause is the last observed error; the earlier errors are not retained.
// Cancelling ctx during a backoff wait fails the call immediately.
func RetryWithBackoff[T any](ctx context.Context, opts RetryOpts, op Operation[T]) results.Result[T] {
	opts.validate()

	var lastErr error

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		r := op(ctx)
		if r.IsSuccess() {
			return r
		}
		lastErr = r.Err

		if attempt == opts.MaxAttempts {
			break
		}

		select {
		case <-time.After(backoffDelay(opts, attempt)):
		case <-ctx.Done():
			return results.Failure[T](ctx.Err())
		}
	}

	err := serviceerr.New(serviceerr.CodeMaxRetriesExceeded, "operation failed after all retry attempts").
		WithDetail("maxAttempts", opts.MaxAttempts).
		WithCause(lastErr)
	return results.Failure[T](err)
}

func backoffDelay(opts RetryOpts, attempt int) time.Duration {
	return time.Duration(float64(opts.BaseDelay) * math.Pow(opts.Multiplier, float64(attempt-1)))
}
