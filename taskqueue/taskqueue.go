// Package taskqueue provides a bounded worker pool that runs submitted tasks
// and delivers each outcome on a future, with configurable behavior when the
// queue is full and a graceful stop that never drops an admitted task.
package taskqueue

import (
	"context"
	"sync"

	"github.com/faultline-dev/faultline/closewaiter"
	"github.com/faultline-dev/faultline/futures"
	"github.com/faultline-dev/faultline/internal/submit"
	"github.com/faultline-dev/faultline/internal/task"
	"github.com/faultline-dev/faultline/results"
)

// RunFunction executes a single task.  The context carries the worker id and
// is derived from the submitter's context.
type RunFunction[T any, R any] func(ctx context.Context, t T) (R, error)

type TaskQueue[T any, R any] struct {
	run      RunFunction[T, R]
	taskChan chan task.Future[T, R]

	submit submit.SubmitFunction[T, R]

	closer   *closewaiter.CloseWaiter
	waitStop *sync.WaitGroup
}

// New creates a task queue with opts.MaxWorkers workers and starts them
// immediately.
func New[T any, R any](opts TaskQueueOpts, run RunFunction[T, R]) *TaskQueue[T, R] {
	opts.validate()

	tq := &TaskQueue[T, R]{
		run:      run,
		taskChan: make(chan task.Future[T, R], opts.MaxQueueDepth),
		submit:   submit.GetSubmitFunction[T, R](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		closer:   closewaiter.New(),
		waitStop: &sync.WaitGroup{},
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		tq.waitStop.Add(1)
		go tq.worker(i)
	}

	return tq
}

func (tq *TaskQueue[T, R]) worker(workerNum int) {
	defer tq.waitStop.Done()

	for tf := range tq.taskChan {
		if tf.Ctx.Err() != nil {
			// the submitter gave up while the task sat in the queue
			tf.Future.Cancel()
			continue
		}

		res, err := tq.run(withWorkerID(tf.Ctx, workerNum), tf.Task)
		if err != nil {
			tf.Future.Fail(err)
			continue
		}
		tf.Future.Complete(res)
	}
}

// Submit enqueues a task and blocks until its outcome is available or ctx is
// canceled.
func (tq *TaskQueue[T, R]) Submit(ctx context.Context, t T) (R, error) {
	f, err := tq.SubmitF(ctx, t)
	if err != nil {
		return *new(R), err
	}
	return f.Get(ctx)
}

// SubmitF enqueues a task and returns the future its outcome will be
// delivered on.  It returns ErrStopped after Stop has been called and
// ErrQueueFull when the queue is full under the ErrorWhenFull strategy.
func (tq *TaskQueue[T, R]) SubmitF(ctx context.Context, t T) (*futures.Future[R], error) {
	tf := task.NewFuture[T, R](ctx, t)

	var submitErr error
	if err := tq.closer.Do(func() {
		submitErr = tq.submit(tq.taskChan, tf)
	}); err != nil {
		return nil, ErrStopped
	}
	if submitErr != nil {
		return nil, submitErr
	}

	return tf.Future, nil
}

// SubmitAll enqueues every task and waits for all of them, returning one
// Result per task at the matching index.  A task that could not be submitted
// contributes a failure at its index; the rest still run.
func (tq *TaskQueue[T, R]) SubmitAll(ctx context.Context, tasks []T) []results.Result[R] {
	fs := make([]*futures.Future[R], len(tasks))
	for i, t := range tasks {
		f, err := tq.SubmitF(ctx, t)
		if err != nil {
			f = futures.FromResult(results.Failure[R](err))
		}
		fs[i] = f
	}

	res := make([]results.Result[R], len(fs))
	for i, f := range fs {
		v, err := f.Get(ctx)
		res[i] = results.New(v, err)
	}
	return res
}

// Stop prevents further submissions, waits for every admitted task to finish,
// and shuts the workers down.  It is safe to call more than once.
func (tq *TaskQueue[T, R]) Stop() {
	tq.closer.Close(func() {
		close(tq.taskChan)
	})

	tq.waitStop.Wait()
}
