package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-statistics/internal/config"
	"github.com/magabrotheeeer/user-statistics/internal/models"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	expected := models.RequestData{
		ID:               7,
		QueryID:          "q-1",
		RequestLocalTime: now,
		UserData: models.UserStatisticRequest{
			UserID:   "TestUserID",
			TimeFrom: now.Add(-time.Hour),
			TimeTo:   now,
		},
	}
	require.NoError(t, cache.Set(ctx, "report:request:q-1", expected, time.Minute))

	var actual models.RequestData
	found, err := cache.Get(ctx, "report:request:q-1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out models.RequestData
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	mr.FastForward(2 * time.Minute)

	var out string
	found, err := cache.Get(ctx, "key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Db.Set(ctx, "bad", []byte("not-json"), time.Minute).Err())

	var out models.RequestData
	found, err := cache.Get(ctx, "bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestSetMarshalError(t *testing.T) {
	cache, _ := setupTestCache(t)

	err := cache.Set(context.Background(), "bad", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.Set")
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:1",
		DialTimeout:  100 * time.Millisecond,
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var c Nop
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	var out string
	found, err := c.Get(ctx, "key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
