package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espalier-ui/espalier/internal/adapters/redis"
	"github.com/espalier-ui/espalier/pkg/ports"
	"github.com/espalier-ui/espalier/pkg/ports/tests"
)

func newTestCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisCache_Contract(t *testing.T) {
	cache, _ := newTestCache(t)
	tests.TransformCacheContractTest(t, cache)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "doc", "<span>out</span>"))

	out, err := cache.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, "<span>out</span>", out)

	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, "doc")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisCache_Prefix(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "doc", "out"))

	assert.True(t, mr.Exists("custom:app:doc"), "expected key with custom prefix to exist")
}
