// Package ratelimiter provides token-bucket rate-limited execution of
// submitted tasks, delivering each outcome on a future.
package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/faultline-dev/faultline/futures"
	"github.com/faultline-dev/faultline/internal/submit"
	"github.com/faultline-dev/faultline/internal/task"
)

// RunFunction executes a single task once the rate limiter has admitted it.
type RunFunction[T any, R any] func(ctx context.Context, t T) (R, error)

type RateLimiter[T any, R any] struct {
	limiter  *rate.Limiter
	taskChan chan task.Future[T, R]

	submit submit.SubmitFunction[T, R]
	run    RunFunction[T, R]
}

// New creates a rate limiter and starts its dispatch worker.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *RateLimiter[T, R] {
	opts.validate()

	rl := &RateLimiter[T, R]{
		limiter:  rate.NewLimiter(opts.Limit, opts.Burst),
		taskChan: make(chan task.Future[T, R], opts.MaxQueueDepth),
		submit:   submit.GetSubmitFunction[T, R](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		run:      run,
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimiter[T, R]) startWorker() {
	go func() {
		for {
			tf, ok := <-rl.taskChan
			if !ok {
				return
			}

			if err := rl.limiter.Wait(tf.Ctx); err != nil {
				tf.Future.Fail(err)
				continue
			}

			rl.runTask(tf)
		}
	}()
}

func (rl *RateLimiter[T, R]) runTask(tf task.Future[T, R]) {
	go func() {
		r, err := rl.run(tf.Ctx, tf.Task)
		if err != nil {
			tf.Future.Fail(err)
			return
		}
		tf.Future.Complete(r)
	}()
}

// Submit enqueues a task and blocks until its outcome is available or ctx is
// canceled.
func (rl *RateLimiter[T, R]) Submit(ctx context.Context, t T) (R, error) {
	f, err := rl.SubmitF(ctx, t)
	if err != nil {
		return *new(R), err
	}
	return f.Get(ctx)
}

// SubmitF enqueues a task and returns the future its outcome will be
// delivered on.  Resolve the future with futures.Resolve to bridge into a
// Result.
func (rl *RateLimiter[T, R]) SubmitF(ctx context.Context, t T) (*futures.Future[R], error) {
	tf := task.NewFuture[T, R](ctx, t)
	if err := rl.submit(rl.taskChan, tf); err != nil {
		return nil, err
	}
	return tf.Future, nil
}

// Close shuts the rate limiter down.
// WARNING If this is called twice or Submit is called after calling Close it will panic.
func (rl *RateLimiter[T, R]) Close() {
	close(rl.taskChan)
}
