// Package closewaiter provides a close-once gate that lets in-flight calls
// drain before a shutdown function runs.  The task queue uses it to close its
// channel without racing late submitters.
package closewaiter

import (
	"errors"
	"runtime"
	"sync/atomic"
)

const (
	open     = 0
	closed   = 1
	minusOne = ^uint32(0)
)

var (
	ErrClosed = errors.New("closed")
)

type CloseWaiter struct {
	isClosed  uint32
	activeCnt uint32

	closed chan struct{}
}

func New() *CloseWaiter {
	return &CloseWaiter{
		closed: make(chan struct{}),
	}
}

// Do runs f unless the waiter has been closed, in which case it returns
// ErrClosed without running f.  Calls admitted before Close are guaranteed to
// finish before the close function runs.
func (c *CloseWaiter) Do(f func()) error {
	atomic.AddUint32(&c.activeCnt, 1)
	defer atomic.AddUint32(&c.activeCnt, minusOne)

	if atomic.LoadUint32(&c.isClosed) == closed {
		return ErrClosed
	}

	f()
	return nil
}

// Close marks the waiter closed, waits for every admitted Do call to exit,
// runs f exactly once, and then returns.  Concurrent and repeated Close calls
// all block until the first one's f has completed.
func (c *CloseWaiter) Close(f func()) {
	if atomic.CompareAndSwapUint32(&c.isClosed, open, closed) {
		go func() {
			for atomic.LoadUint32(&c.activeCnt) != 0 {
				// busy wait while yielding until all calls to Do have exited
				runtime.Gosched()
			}

			f()

			close(c.closed)
		}()
	}

	<-c.closed
}
