package memcache_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"tripwise/internal/infra"
	mem "tripwise/pkg/memcache"
)

var Module = fx.Provide(
	provideRedis, providePlanCache)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func providePlanCache(rdb *redis.Client) mem.PlanCache {
	return mem.NewRedisPlanCache(rdb)
}
