// Package fallback provides racing strategies for a set of alternative
// operations that all produce the same kind of value: try them one at a time
// until one succeeds, or start them all at once and pick a winner.
package fallback

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/faultline-dev/faultline/results"
)

// Operation is a fallible step submitted to a fallback strategy.
type Operation[T any] func(ctx context.Context) results.Result[T]

// TrySequential invokes the operations one at a time in slice order, awaiting
// each before starting the next; operations never overlap.  The first success
// is returned immediately and the remaining operations are not started.  If
// every operation fails the result is a failure carrying an ExhaustedError
// with each operation's error in attempted order.
//
// If ctx is canceled between operations the walk stops and the context error
// is recorded in place of the remaining attempts.
func TrySequential[T any](ctx context.Context, ops []Operation[T]) results.Result[T] {
	errs := make([]error, 0, len(ops))

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		r := op(ctx)
		if r.IsSuccess() {
			return r
		}
		errs = append(errs, r.Err)
	}

	return results.Failure[T](&ExhaustedError{Errs: errs})
}

// TryParallel starts every operation at the same instant and waits for all of
// them to settle, even once a success is known: by the time it returns, the
// full latency and resource cost of every operation has been paid.  The
// winner is the first success found scanning the settled results in slice
// order, regardless of which operation finished first on the clock.  If no
// operation succeeded the result is a failure carrying an ExhaustedError with
// the errors in slice order.
func TryParallel[T any](ctx context.Context, ops []Operation[T]) results.Result[T] {
	res := make([]results.Result[T], len(ops))

	g := new(errgroup.Group)
	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			res[i] = op(ctx)
			return nil
		})
	}
	// operations report failure through their Result, never through the group
	_ = g.Wait()

	for _, r := range res {
		if r.IsSuccess() {
			return r
		}
	}

	errs := make([]error, 0, len(ops))
	for _, r := range res {
		errs = append(errs, r.Err)
	}
	return results.Failure[T](&ExhaustedError{Errs: errs})
}
