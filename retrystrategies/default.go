package retrystrategies

import (
	"time"
)

type DefaultRetryStrategy struct {
	intervalMillis uint64
}

func (r *DefaultRetryStrategy) NextDuration(uint64) time.Duration {
	d := time.Duration(r.intervalMillis) * time.Millisecond
	if d > MaxDuration || d < 0 {
		return MaxDuration
	}
	return d
}

func NewDefault(intervalMillis uint64) *DefaultRetryStrategy {
	return &DefaultRetryStrategy{
		intervalMillis: intervalMillis,
	}
}

var _ RetryStrategy = (*DefaultRetryStrategy)(nil)
