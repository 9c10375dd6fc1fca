package taskqueue

import (
	"errors"

	"github.com/faultline-dev/faultline/internal/submit"
)

var (
	ErrQueueFull = submit.ErrQueueFull
	ErrStopped   = errors.New("task queue has been stopped")
)
