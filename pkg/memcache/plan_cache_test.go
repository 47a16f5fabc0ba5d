package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (PlanCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisPlanCache(rdb), mr
}

func TestPlanCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, found := cache.Get(ctx, "abc123")
	assert.False(t, found)

	cache.Set(ctx, "abc123", `{"hotels":[]}`, DefaultPlanTTL)

	val, found := cache.Get(ctx, "abc123")
	require.True(t, found)
	assert.Equal(t, `{"hotels":[]}`, val)
}

func TestPlanCache_TTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "abc123", "payload", time.Minute)

	mr.FastForward(2 * time.Minute)

	_, found := cache.Get(ctx, "abc123")
	assert.False(t, found)
}

func TestPlanCache_DeadRedisIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "abc123", "payload", DefaultPlanTTL)
	mr.Close()

	_, found := cache.Get(ctx, "abc123")
	assert.False(t, found)
}

func TestPlanCacheKey(t *testing.T) {
	key := PlanCacheKey("Lisbon", 3, "couple", "moderate")
	assert.Len(t, key, 16)

	// Stable for identical parameters, distinct otherwise.
	assert.Equal(t, key, PlanCacheKey("Lisbon", 3, "couple", "moderate"))
	assert.NotEqual(t, key, PlanCacheKey("Lisbon", 4, "couple", "moderate"))
	assert.NotEqual(t, key, PlanCacheKey("Porto", 3, "couple", "moderate"))
}
