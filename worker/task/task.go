package task

import (
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

// DeferError asks the queue to run the task again after Delay without
// counting the run as a failure.
type DeferError struct {
	delay time.Duration
	Err   error
}

func NewDeferError(delay time.Duration, err error) *DeferError {
	return &DeferError{delay: delay, Err: err}
}

func (e *DeferError) Error() string {
	return e.Err.Error()
}

func (e *DeferError) Unwrap() error {
	return e.Err
}

func (e *DeferError) Delay() time.Duration {
	return e.delay
}

// IsFailure reports whether err should count against the task's retries.
func IsFailure(err error) bool {
	var de *DeferError
	return !errors.As(err, &de)
}

func GetRetryDelay(n int, err error, t *asynq.Task) time.Duration {
	var de *DeferError
	if errors.As(err, &de) {
		return de.Delay()
	}

	return asynq.DefaultRetryDelayFunc(n, err, t)
}
