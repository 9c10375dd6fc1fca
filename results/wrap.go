package results

import (
	"fmt"

	"github.com/faultline-dev/faultline/serviceerr"
)

// Wrap invokes fn and captures its outcome as a Result.  A returned error
// becomes a plain failure; a panic inside fn is recovered and converted into
// a serviceerr failure with code FUNCTION_ERROR carrying the recovered value.
func Wrap[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			err := serviceerr.New(serviceerr.CodeFunctionError, "wrapped function panicked").
				WithDetail("panic", p).
				WithCause(panicError(p))
			r = Failure[T](err)
		}
	}()

	val, err := fn()
	return New(val, err)
}

// WrapFunc returns a function with the same behavior as fn but returning a
// Result instead of (value, error), with panics converted per Wrap.
func WrapFunc[T any](fn func() (T, error)) func() Result[T] {
	return func() Result[T] {
		return Wrap(fn)
	}
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}
