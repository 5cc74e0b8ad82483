package retrystrategies

import (
	"math"
	"time"
)

// ExponentialBackoffRetryStrategy waits baseMillis * factor^(attempts-1).
type ExponentialBackoffRetryStrategy struct {
	baseMillis uint64
	factor     float64
}

func (r *ExponentialBackoffRetryStrategy) NextDuration(attempts uint64) time.Duration {
	if attempts == 0 {
		attempts = 1
	}

	ms := float64(r.baseMillis) * math.Pow(r.factor, float64(attempts-1))
	if math.IsInf(ms, 0) || math.IsNaN(ms) || ms > float64(MaxDuration/time.Millisecond) {
		return MaxDuration
	}

	return time.Duration(ms) * time.Millisecond
}

func NewExponential(baseMillis uint64, factor float64) *ExponentialBackoffRetryStrategy {
	return &ExponentialBackoffRetryStrategy{
		baseMillis: baseMillis,
		factor:     factor,
	}
}

var _ RetryStrategy = (*ExponentialBackoffRetryStrategy)(nil)
