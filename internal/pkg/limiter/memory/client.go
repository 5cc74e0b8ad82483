package mlimiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/gummi-coder/Novora-sub009/internal/pkg/limiter"
)

type entry struct {
	rate     int
	duration int
	limiter  *rate.Limiter
}

// MemoryRateLimiter keeps one token bucket per key in process memory.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		limiters: make(map[string]*entry),
	}
}

func (m *MemoryRateLimiter) Allow(_ context.Context, key string, limit int, duration int) error {
	if limit <= 0 || duration <= 0 {
		return nil
	}

	l := m.get(key, limit, duration)

	r := l.Reserve()
	if !r.OK() {
		return &limiter.RateLimitError{Delay: time.Duration(duration) * time.Second}
	}

	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return &limiter.RateLimitError{Delay: delay}
	}

	return nil
}

func (m *MemoryRateLimiter) get(key string, limit int, duration int) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.limiters[key]
	if ok && e.rate == limit && e.duration == duration {
		return e.limiter
	}

	every := time.Duration(duration) * time.Second / time.Duration(limit)
	e = &entry{
		rate:     limit,
		duration: duration,
		limiter:  rate.NewLimiter(rate.Every(every), limit),
	}
	m.limiters[key] = e

	return e.limiter
}
