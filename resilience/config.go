package resilience

import "time"

// RetryOpts configures RetryWithBackoff.
type RetryOpts struct {
	// MaxAttempts is the total number of times the operation may run.
	MaxAttempts int
	// BaseDelay is the wait after the first failed attempt.
	BaseDelay time.Duration
	// Multiplier grows the delay after each further failed attempt.
	Multiplier float64
}

// DefaultRetryOpts returns the standard retry configuration: three attempts
// with a one second base delay doubling between attempts.
func DefaultRetryOpts() RetryOpts {
	return RetryOpts{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Multiplier:  2.0,
	}
}

func (o RetryOpts) validate() {
	if o.MaxAttempts < 1 {
		panic("retry max attempts must be 1 or greater")
	}

	if o.BaseDelay < 0 {
		panic("retry base delay must be 0 or greater")
	}

	if o.Multiplier <= 0 {
		panic("retry multiplier must be greater than 0")
	}
}
