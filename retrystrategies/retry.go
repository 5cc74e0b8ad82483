package retrystrategies

import (
	"time"

	"github.com/gummi-coder/Novora-sub009/datastore"
)

// MaxDuration bounds every strategy so large factors cannot overflow.
const MaxDuration = 24 * time.Hour

type RetryStrategy interface {
	// NextDuration is how long we should wait after the attempts-th failure
	NextDuration(attempts uint64) time.Duration
}

// NewRetryStrategyFromConfig returns a constant strategy for a backoff factor
// of one and an exponential one otherwise.
func NewRetryStrategyFromConfig(rc datastore.RetryConfig) RetryStrategy {
	if rc.BackoffFactor <= 1 {
		return NewDefault(rc.RetryDelay)
	}

	return NewExponential(rc.RetryDelay, rc.BackoffFactor)
}
