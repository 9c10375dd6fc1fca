package futures

import (
	"context"

	"github.com/faultline-dev/faultline/results"
	"github.com/faultline-dev/faultline/serviceerr"
)

// Resolve awaits f and returns its outcome as a Result.  Any error the await
// produces, whether the future failed, was canceled, or the context expired
// first, is wrapped into a serviceerr failure with code FUTURE_ERROR carrying
// the original error as its cause.  Resolve never panics.
func Resolve[T any](ctx context.Context, f *Future[T]) results.Result[T] {
	v, err := f.Get(ctx)
	if err != nil {
		se := serviceerr.New(serviceerr.CodeFutureError, "future settled with an error").
			WithCause(err)
		return results.Failure[T](se)
	}
	return results.Success(v)
}

// FromResult returns an already-settled Future carrying r's outcome.  It is
// the inverse bridge to Resolve, for handing a Result to await-style
// consumers: on success the future resolves with the value, on failure it
// fails with the error.
func FromResult[T any](r results.Result[T]) *Future[T] {
	f := New[T]()
	if r.Err != nil {
		f.Fail(r.Err)
		return f
	}
	f.Complete(r.Val)
	return f
}

// WrapAsync returns a function that runs fn on its own goroutine and reports
// its settled outcome as a Result.  A panic inside fn is recovered on the
// worker goroutine and converted into a serviceerr failure with code
// ASYNC_FUNCTION_ERROR; it never crosses a goroutine boundary.
func WrapAsync[T any](fn func(ctx context.Context) (T, error)) func(ctx context.Context) results.Result[T] {
	return func(ctx context.Context) results.Result[T] {
		f := New[T]()

		go func() {
			defer func() {
				if p := recover(); p != nil {
					err := serviceerr.New(serviceerr.CodeAsyncFunctionError, "wrapped async function panicked").
						WithDetail("panic", p)
					f.Fail(err)
				}
			}()

			v, err := fn(ctx)
			if err != nil {
				f.Fail(err)
				return
			}
			f.Complete(v)
		}()

		v, err := f.Get(ctx)
		return results.New(v, err)
	}
}
