package storage

import (
	"log/slog"
	"time"

	"github.com/go-redis/redis"
)

func NewCache(logger *slog.Logger, client *redis.Client) *Cache {
	return &Cache{
		logger: logger,
		client: client,
	}
}

// Cache is a best-effort read cache for listing endpoints. Redis being down
// never fails a request; misses and errors both fall through to the database.
type Cache struct {
	logger *slog.Logger
	client *redis.Client
}

func (c *Cache) Get(key string) (string, bool) {
	value, err := c.client.Get(key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("Cache read failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (c *Cache) Set(key string, value string, expiration time.Duration) {
	if err := c.client.Set(key, value, expiration).Err(); err != nil {
		c.logger.Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *Cache) Delete(keys ...string) {
	if err := c.client.Del(keys...).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}
