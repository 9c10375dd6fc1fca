package resilience

import (
	"context"
	"time"

	"github.com/faultline-dev/faultline/results"
	"github.com/faultline-dev/faultline/serviceerr"
)

// WithTimeout races op against a timer.  The operation runs on its own
// goroutine and receives a context whose deadline is the timeout, so an
// operation that honors cancellation stops doing work once the race is lost.
//
// If the timer fires first the result is a serviceerr failure with code
// OPERATION_TIMEOUT (details: timeoutMs); the operation is not forcibly
// terminated and its eventual outcome is discarded.  If op settles first its
// Result, success or failure, is returned unchanged.  A panic inside op is
// recovered and reported as a TIMEOUT_ERROR failure carrying the recovered
// value.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, op Operation[T]) results.Result[T] {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan results.Result[T], 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				err := serviceerr.New(serviceerr.CodeTimeoutError, "operation panicked while racing a timeout").
					WithDetail("panic", p)
				done <- results.Failure[T](err)
			}
		}()

		done <- op(tctx)
	}()

	select {
	case r := <-done:
		return r
	case <-tctx.Done():
		if err := ctx.Err(); err != nil {
			// the caller's context died first, not the timer
			return results.Failure[T](err)
		}

		err := serviceerr.New(serviceerr.CodeOperationTimeout, "operation timed out").
			WithDetail("timeoutMs", timeout.Milliseconds())
		return results.Failure[T](err)
	}
}
