package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL connects a Redis client from a REDIS_URL style string.
func NewRedisFromURL(ctx context.Context, rawURL string) *redis.Client {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		log.Printf("[WARN] invalid REDIS_URL, cache disabled: %v", err)
		return nil
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] redis unreachable, cache disabled: %v", err)
		return nil
	}
	return rdb
}

// Close closes the client if present.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
