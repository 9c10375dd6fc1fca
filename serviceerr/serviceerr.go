// Package serviceerr defines the structured failure payload produced by the
// combinator packages when they synthesize an error of their own (retry
// exhaustion, timeout expiry, recovered panics).  Callers pattern-match on the
// Code string; everything else is informational.
package serviceerr

import (
	"fmt"
	"time"
)

// Code identifies the failure condition.  Codes are flat string identifiers,
// not a hierarchy.
type Code string

const (
	// CodeFutureError indicates a future settled with an error while being
	// resolved into a Result.
	CodeFutureError Code = "FUTURE_ERROR"
	// CodeFunctionError indicates a wrapped synchronous function panicked.
	CodeFunctionError Code = "FUNCTION_ERROR"
	// CodeAsyncFunctionError indicates a wrapped asynchronous function panicked.
	CodeAsyncFunctionError Code = "ASYNC_FUNCTION_ERROR"
	// CodeMaxRetriesExceeded indicates every retry attempt failed.
	CodeMaxRetriesExceeded Code = "MAX_RETRIES_EXCEEDED"
	// CodeOperationTimeout indicates the timeout deadline won the race.
	CodeOperationTimeout Code = "OPERATION_TIMEOUT"
	// CodeTimeoutError indicates the raced operation panicked instead of
	// settling normally.
	CodeTimeoutError Code = "TIMEOUT_ERROR"
	// CodeBatchMismatch indicates a batch run function returned a result
	// count that does not match its task count.
	CodeBatchMismatch Code = "BATCH_RESULT_MISMATCH"
)

// Severity is an informational classification only.  It never changes how a
// failure propagates.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Error is the canonical structured failure value.  Build one with New and
// the With* methods, then stop mutating it; a published Error is read-only.
type Error struct {
	Code      Code
	Message   string
	Details   map[string]any
	Timestamp time.Time
	Severity  Severity

	cause error
}

// New creates an Error with the current time and medium severity.
func New(code Code, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Severity:  SeverityMedium,
	}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the original error, if any, to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair of structured context.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithSeverity overrides the default medium severity.
func (e *Error) WithSeverity(s Severity) *Error {
	e.Severity = s
	return e
}

// WithCause records the underlying error that produced this one.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}
