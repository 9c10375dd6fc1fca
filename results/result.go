// Package results provides a two-variant Result container used in place of
// throwing errors across call chains, along with the pure combinators for
// transforming, chaining, and aggregating Results.
//
// A Result is either a success carrying a value or a failure carrying an
// error, never both.  Construct one with Success, Failure, or New and treat
// it as immutable afterwards.
package results

type Result[R any] struct {
	Val R
	Err error
}

// New builds a Result from a conventional (value, error) pair.  A nil error
// yields a success, anything else a failure.
func New[R any](val R, err error) Result[R] {
	return Result[R]{Val: val, Err: err}
}

func Success[T any](val T) Result[T] {
	return Result[T]{Val: val}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// IsSuccess reports whether r carries a value.
func (r Result[R]) IsSuccess() bool {
	return r.Err == nil
}

// IsFailure reports whether r carries an error.
func (r Result[R]) IsFailure() bool {
	return r.Err != nil
}

// Unwrap converts r back into a conventional (value, error) pair.
func (r Result[R]) Unwrap() (R, error) {
	return r.Val, r.Err
}

// UnwrapOr returns the value on success and def on failure.
func (r Result[R]) UnwrapOr(def R) R {
	if r.Err != nil {
		return def
	}
	return r.Val
}
