package mcache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/require"
)

type webhook struct {
	ID   string
	Name string
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	err := c.Get(ctx, "webhook_cache:missing", &webhook{})
	require.ErrorIs(t, err, cache.ErrCacheMiss)

	in := &webhook{ID: "01HZX", Name: "orders"}
	require.NoError(t, c.Set(ctx, "webhook_cache:01HZX", in, time.Minute))

	var out webhook
	require.NoError(t, c.Get(ctx, "webhook_cache:01HZX", &out))
	require.Equal(t, *in, out)

	require.NoError(t, c.Delete(ctx, "webhook_cache:01HZX"))
	require.ErrorIs(t, c.Get(ctx, "webhook_cache:01HZX", &out), cache.ErrCacheMiss)

	// deleting twice is fine
	require.NoError(t, c.Delete(ctx, "webhook_cache:01HZX"))
}
