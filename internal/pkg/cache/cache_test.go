package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedResult struct {
	Candidate  string `json:"candidate"`
	TotalVotes int64  `json:"total_votes"`
}

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisCache_RoundTrip(t *testing.T) {
	mr, c := setupMiniredis(t)
	ctx := context.Background()

	var miss []cachedResult
	found, err := c.Get(ctx, "results:public:all", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	want := []cachedResult{{Candidate: "Ama", TotalVotes: 5}}
	require.NoError(t, c.Set(ctx, "results:public:all", want, time.Minute))

	var got []cachedResult
	found, err = c.Get(ctx, "results:public:all", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	mr.FastForward(61 * time.Second)
	found, err = c.Get(ctx, "results:public:all", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_Delete(t *testing.T) {
	mr, c := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	require.NoError(t, c.Delete(ctx, "a", "b", "missing"))
	require.NoError(t, c.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestRedisCache_DecodeError(t *testing.T) {
	mr, c := setupMiniredis(t)
	require.NoError(t, mr.Set("settings:x", "not-json"))

	var dest map[string]string
	found, err := c.Get(context.Background(), "settings:x", &dest)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisCache_Unavailable(t *testing.T) {
	mr, c := setupMiniredis(t)
	mr.Close()

	var dest string
	_, err := c.Get(context.Background(), "k", &dest)
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), "k", "v", time.Second))
	assert.Error(t, c.Delete(context.Background(), "k"))
}
