package verify

import (
	"fmt"
	"time"
)

// TimeoutError reports a solver run that exceeded its time budget. The
// run is not retried; verification is idempotent and the caller may
// re-invoke it.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("solver exceeded time budget of %s", e.Limit)
}

// ProcessError reports a solver that exited abnormally without usable
// output. Output carries whatever diagnostic text was captured.
type ProcessError struct {
	Output string
	Err    error
}

func (e *ProcessError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("solver failed: %v", e.Err)
	}
	return fmt.Sprintf("solver failed: %v: %s", e.Err, e.Output)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
