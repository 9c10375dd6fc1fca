// Package batch provides an executor that collects individually submitted
// tasks into batches, runs each batch through a single function, and fans the
// per-task Results back out to the submitters.
//
// A batch is dispatched when it reaches MaxSize tasks or when MaxLinger has
// elapsed since the batch was opened, whichever comes first.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/faultline-dev/faultline/results"
	"github.com/faultline-dev/faultline/serviceerr"
)

// RunBatchFunction executes a whole batch.  It must return one Result per
// task, at the matching index.  A non-nil error fails every task in the
// batch.
type RunBatchFunction[T any, R any] func(tasks []T) ([]results.Result[R], error)

type batch[T any, R any] struct {
	id          int
	contexts    []context.Context
	tasks       []T
	resultChans []chan<- results.Result[R]
}

func (b *batch[T, R]) add(ctx context.Context, t T, resultChan chan<- results.Result[R]) {
	b.contexts = append(b.contexts, ctx)
	b.tasks = append(b.tasks, t)
	b.resultChans = append(b.resultChans, resultChan)
}

type BatchExecutor[T any, R any] struct {
	m            *sync.Mutex
	sequenceNum  int
	currentBatch *batch[T, R]
	run          RunBatchFunction[T, R]
	maxSize      int
	maxLinger    time.Duration
}

func NewExecutor[T any, R any](opts BatchOpts, run RunBatchFunction[T, R]) *BatchExecutor[T, R] {
	opts.validate()

	return &BatchExecutor[T, R]{
		m:           &sync.Mutex{},
		sequenceNum: 0,
		run:         run,
		maxSize:     opts.MaxSize,
		maxLinger:   opts.MaxLinger,
	}
}

// Submit adds a task to the current batch and blocks until the task's Result
// arrives or ctx is canceled.
func (be *BatchExecutor[T, R]) Submit(ctx context.Context, t T) (R, error) {
	resultChan := make(chan results.Result[R])
	be.addTask(ctx, t, resultChan)

	select {
	case res := <-resultChan:
		return res.Unwrap()

	case <-ctx.Done():
		return *new(R), context.Canceled
	}
}

func (be *BatchExecutor[T, R]) addTask(ctx context.Context, t T, resultChan chan<- results.Result[R]) {
	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch == nil {
		be.currentBatch = be.newBatch()
	}
	be.currentBatch.add(ctx, t, resultChan)

	if len(be.currentBatch.tasks) >= be.maxSize {
		go be.runBatch(be.currentBatch)
		be.currentBatch = nil
	}
}

func (be *BatchExecutor[T, R]) newBatch() *batch[T, R] {
	be.sequenceNum++

	b := &batch[T, R]{
		id:    be.sequenceNum,
		tasks: make([]T, 0, be.maxSize),
	}

	go be.expireBatch(b.id)
	return b
}

func (be *BatchExecutor[T, R]) expireBatch(batchID int) {
	time.Sleep(be.maxLinger)

	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch != nil && be.currentBatch.id == batchID {
		go be.runBatch(be.currentBatch)
		be.currentBatch = nil
	}
}

func (be *BatchExecutor[T, R]) runBatch(b *batch[T, R]) {
	res, err := be.run(b.tasks)
	if err != nil {
		b.failAll(err)
		return
	}

	if len(res) != len(b.tasks) {
		// the run function broke the one-result-per-task contract; failing
		// every submitter beats misdelivering results by index
		err := serviceerr.New(serviceerr.CodeBatchMismatch, "batch run function returned the wrong number of results").
			WithDetail("tasks", len(b.tasks)).
			WithDetail("results", len(res)).
			WithSeverity(serviceerr.SeverityHigh)
		b.failAll(err)
		return
	}

	for i, r := range res {
		b.sendResult(i, r)
	}
}

func (b *batch[T, R]) failAll(err error) {
	for i := range b.tasks {
		b.sendResult(i, results.Failure[R](err))
	}
}

func (b *batch[T, R]) sendResult(idx int, res results.Result[R]) {
	ctx := b.contexts[idx]
	resultChan := b.resultChans[idx]

	select {
	case resultChan <- res:
	case <-ctx.Done():
	}

	close(resultChan)
}
