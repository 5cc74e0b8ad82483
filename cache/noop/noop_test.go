package ncache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/require"
)

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	var v string
	require.ErrorIs(t, c.Get(ctx, "k", &v), cache.ErrCacheMiss)
	require.NoError(t, c.Delete(ctx, "k"))
}
