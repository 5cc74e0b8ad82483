package mcache

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
)

type MemoryCache struct {
	cache *cache.Cache
}

const cacheSize = 128000

func NewMemoryCache() *MemoryCache {
	c := cache.New(&cache.Options{
		LocalCache: cache.NewTinyLFU(cacheSize, time.Hour),
	})

	return &MemoryCache{cache: c}
}

func (m *MemoryCache) Set(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	return m.cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: data,
		TTL:   ttl,
	})
}

// Get returns cache.ErrCacheMiss when key is absent.
func (m *MemoryCache) Get(ctx context.Context, key string, data interface{}) error {
	return m.cache.Get(ctx, key, data)
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	err := m.cache.Delete(ctx, key)
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}
