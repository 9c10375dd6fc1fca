package batch

import "time"

type BatchOpts struct {
	// MaxSize is the number of tasks that triggers an immediate dispatch.
	MaxSize int
	// MaxLinger is how long an unfilled batch waits before dispatching anyway.
	MaxLinger time.Duration
}

func (o BatchOpts) validate() {
	if o.MaxSize <= 1 {
		panic("maximum batch size must be greater than 1")
	}

	if o.MaxLinger <= 0 {
		panic("batch linger must be greater than 0")
	}
}
