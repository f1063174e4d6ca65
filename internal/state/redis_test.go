package state

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	store := NewRedisStore(rdb, "chamber:visitor:", "v1")

	_, ok, err := store.Get(ctx, KeyLastVisit)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, KeyLastVisit, "1700000000000"))

	value, ok, err := store.Get(ctx, KeyLastVisit)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1700000000000", value)

	raw, err := mr.Get("chamber:visitor:v1:" + KeyLastVisit)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", raw)

	other := NewRedisStore(rdb, "chamber:visitor:", "v2")
	_, ok, err = other.Get(ctx, KeyLastVisit)
	require.NoError(t, err)
	assert.False(t, ok, "visitors do not share values")
}

func TestRedisStore_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	store := NewRedisStore(rdb, "p:", "v")
	_, _, err := store.Get(context.Background(), KeyTrackFilter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get")
}
