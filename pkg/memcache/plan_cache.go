// pkg/memcache/plan_cache.go
package memcache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlanCache stores normalized itinerary JSON keyed by the trip parameters
// that produced it. Identical requests within the TTL skip the model call.
type PlanCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, payload string, ttl time.Duration)
}

const DefaultPlanTTL = time.Hour

type redisPlanCache struct {
	rdb *redis.Client
}

func NewRedisPlanCache(rdb *redis.Client) PlanCache {
	return &redisPlanCache{rdb: rdb}
}

func (c *redisPlanCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, "plan:"+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// A dead cache is a miss, not a failure.
		log.Printf("plan cache get failed: %v", err)
		return "", false
	}
	return val, true
}

func (c *redisPlanCache) Set(ctx context.Context, key string, payload string, ttl time.Duration) {
	if err := c.rdb.Set(ctx, "plan:"+key, payload, ttl).Err(); err != nil {
		log.Printf("plan cache set failed: %v", err)
	}
}

// PlanCacheKey hashes the trip parameters into a stable cache key.
func PlanCacheKey(location string, durationDays int, partySize, budgetTier string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s", location, durationDays, partySize, budgetTier)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
