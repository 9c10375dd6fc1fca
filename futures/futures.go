// Package futures provides a Future representing an asynchronous computation
// that settles exactly once, plus the bridges between futures and the
// results.Result container.  A Future can be handed to multiple consumers and
// read repeatedly, which is the key difference from using a bare channel.
package futures

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future represents an asynchronous computation.  Create one with New or the
// FromFunc convenience function.
//
// A future settles exactly once: the first call to Complete, Fail, or Cancel
// wins and every later completion is silently ignored.  Complete is the
// success path, Fail records an error, Cancel records ErrCanceled.
//
// Get extracts the settled value, blocking until the future settles or the
// provided context is canceled.  Get is safe to call from any number of
// goroutines and they all observe the same outcome.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled manually by calling
// Complete, Fail, or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a Future that settles with the outcome of do, which is
// started on its own goroutine immediately.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Complete settles this Future with the provided value.  Ignored if the
// future has already settled.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Cancel settles this Future with ErrCanceled.  Ignored if the future has
// already settled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail settles this Future with the provided error.  Ignored if the future
// has already settled.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), err)
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Get retrieves the outcome of this Future, blocking until the future settles
// or the provided context is canceled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), context.Canceled
	}
}
