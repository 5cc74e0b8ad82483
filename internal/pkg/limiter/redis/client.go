package rlimiter

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/gummi-coder/Novora-sub009/internal/pkg/limiter"
)

type RedisLimiter struct {
	limiter *redis_rate.Limiter
}

func NewRedisLimiter(client redis.UniversalClient) *RedisLimiter {
	return &RedisLimiter{limiter: redis_rate.NewLimiter(client)}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string, limit int, duration int) error {
	l := redis_rate.Limit{
		Period: time.Second * time.Duration(duration),
		Rate:   limit,
		Burst:  limit,
	}

	result, err := r.limiter.Allow(ctx, key, l)
	if err != nil {
		return err
	}

	if result.Allowed == 0 {
		return &limiter.RateLimitError{Delay: result.RetryAfter}
	}

	return nil
}
