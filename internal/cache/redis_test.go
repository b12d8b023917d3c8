package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()

	mr := miniredis.RunT(t)
	c := NewRedisCache(Options{Addr: mr.Addr()})
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLikesReceived_MissWhenCold(t *testing.T) {
	c := newTestCache(t)

	_, err := c.GetLikesReceived(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestLikesReceived_SeedAndIncrement(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetLikesReceived(ctx, 7, 3))

	count, err := c.GetLikesReceived(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, c.IncrLikesReceived(ctx, 7))

	count, err = c.GetLikesReceived(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestIncrLikesReceived_NoopWhenCold(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	// Холодный счетчик не инкрементируется: его засеет чтение из БД
	require.NoError(t, c.IncrLikesReceived(ctx, 2))

	_, err := c.GetLikesReceived(ctx, 2)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
