package ncache

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
)

// NoopCache stores nothing; every Get is a miss.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (n *NoopCache) Get(context.Context, string, interface{}) error {
	return cache.ErrCacheMiss
}

func (n *NoopCache) Delete(context.Context, string) error {
	return nil
}
