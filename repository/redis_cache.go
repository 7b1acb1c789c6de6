package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// estimateTTL bounds how long a cached estimate stays valid. The engine
// is deterministic, but thresholds change between tax years.
const estimateTTL = 24 * time.Hour

// RedisCache is a CacheRepository backed by Redis.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(context.Background(), key, value, estimateTTL).Err()
}
