package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/jobfit/internal/types"
)

// DefaultCacheTTL bounds how long a cached score stays valid. Postings churn
// quickly enough that a day-old score is considered stale.
const DefaultCacheTTL = 24 * time.Hour

// Cache is a read-through Redis cache of full ScoreResults, keyed by CacheKey.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis at redisURL. A zero ttl falls back to
// DefaultCacheTTL.
func NewCache(ctx context.Context, redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Get returns the cached result for key, or nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*types.ScoreResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached score: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached score: %w", err)
	}
	return &result, nil
}

// Set stores a result under key for the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, result *types.ScoreResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode score for cache: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached score: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
