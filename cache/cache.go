package cache

import (
	"context"
	"time"

	gocache "github.com/go-redis/cache/v9"

	mcache "github.com/gummi-coder/Novora-sub009/cache/memory"
	ncache "github.com/gummi-coder/Novora-sub009/cache/noop"
	rcache "github.com/gummi-coder/Novora-sub009/cache/redis"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
)

// ErrCacheMiss is returned by Get when the key holds nothing.
var ErrCacheMiss = gocache.ErrCacheMiss

type Cache interface {
	Set(ctx context.Context, key string, data interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, data interface{}) error
	Delete(ctx context.Context, key string) error
}

var (
	_ Cache = (*rcache.RedisCache)(nil)
	_ Cache = (*mcache.MemoryCache)(nil)
	_ Cache = (*ncache.NoopCache)(nil)
)

func NewRedisCache(r *rdb.Redis) Cache {
	return rcache.NewRedisCache(r.Client())
}

func NewMemoryCache() Cache {
	return mcache.NewMemoryCache()
}

func NewNoopCache() Cache {
	return ncache.NewNoopCache()
}

