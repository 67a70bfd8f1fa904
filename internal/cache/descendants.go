package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces descendant closure entries
const KeyPrefix = "activity:descendants:"

// RedisDescendantCache keeps descendant closures in Redis as JSON arrays
type RedisDescendantCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure RedisDescendantCache implements DescendantCacheInterface
var _ DescendantCacheInterface = (*RedisDescendantCache)(nil)

// NewRedisDescendantCache creates a cache whose entries expire after ttl
func NewRedisDescendantCache(client *redis.Client, ttl time.Duration) *RedisDescendantCache {
	return &RedisDescendantCache{client: client, ttl: ttl}
}

// Open creates a Redis client for addr. An empty address disables caching and returns nil.
func Open(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func key(activityID uint) string {
	return KeyPrefix + strconv.FormatUint(uint64(activityID), 10)
}

// Get returns the cached closure of activityID
func (c *RedisDescendantCache) Get(ctx context.Context, activityID uint) ([]uint, bool, error) {
	raw, err := c.client.Get(ctx, key(activityID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read descendant cache: %w", err)
	}

	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("failed to decode descendant cache entry: %w", err)
	}
	return ids, true, nil
}

// Set stores the closure of activityID
func (c *RedisDescendantCache) Set(ctx context.Context, activityID uint, ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode descendant cache entry: %w", err)
	}
	if err := c.client.Set(ctx, key(activityID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write descendant cache: %w", err)
	}
	return nil
}

// Invalidate removes the entries of activityIDs
func (c *RedisDescendantCache) Invalidate(ctx context.Context, activityIDs []uint) error {
	if len(activityIDs) == 0 {
		return nil
	}
	keys := make([]string, len(activityIDs))
	for i, id := range activityIDs {
		keys[i] = key(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate descendant cache: %w", err)
	}
	return nil
}
