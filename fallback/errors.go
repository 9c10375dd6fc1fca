package fallback

import (
	"fmt"
	"strings"
)

// ExhaustedError is returned when every operation handed to TrySequential or
// TryParallel failed.  Errs holds one error per operation in the order the
// operations appeared in the input slice.
type ExhaustedError struct {
	Errs []error
}

func (e *ExhaustedError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("all %d operations failed: %s", len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap exposes every collected error to errors.Is and errors.As.
func (e *ExhaustedError) Unwrap() []error {
	return e.Errs
}
