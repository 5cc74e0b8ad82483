package limiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type RateLimiter interface {
	// Allow takes a token for key, permitting rate requests every duration seconds.
	// It returns a *RateLimitError carrying the wait time when no token is left.
	Allow(ctx context.Context, key string, rate int, duration int) error
}

type RateLimitError struct {
	Delay time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s, retry after %s", ErrRateLimitExceeded, e.Delay)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimitExceeded
}

// GetRetryAfter returns the wait carried by a rate limit error, or zero.
func GetRetryAfter(err error) time.Duration {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return rle.Delay
	}
	return 0
}

type noopLimiter struct{}

// NewNoopLimiter allows everything.
func NewNoopLimiter() RateLimiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string, int, int) error {
	return nil
}
