package task

import (
	"context"

	"github.com/faultline-dev/faultline/futures"
)

// Future pairs a submitted task with the future its eventual outcome is
// delivered on, plus the submitter's context.
type Future[T any, R any] struct {
	Ctx    context.Context
	Task   T
	Future *futures.Future[R]
}

func NewFuture[T any, R any](ctx context.Context, t T) Future[T, R] {
	return Future[T, R]{
		Ctx:    ctx,
		Task:   t,
		Future: futures.New[R](),
	}
}
