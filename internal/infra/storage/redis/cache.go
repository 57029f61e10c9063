package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txharvest/internal/harvest"

	redis "github.com/redis/go-redis/v9"
)

// responseStoragePrefix defines the base key prefix used for cached explorer responses.
const responseStoragePrefix = "txharvest"

// Compile-time assertion that client implements harvest.ResponseCache.
var _ harvest.ResponseCache = (*client)(nil)

// responseStorageKey returns the Redis key holding the cached response for key.
//
// Format: "txharvest:response:{address}_{txs|internal}"
func responseStorageKey(key harvest.CacheKey) string {
	return fmt.Sprintf("%s:response:%s", responseStoragePrefix, key.Name())
}

// Load implements harvest.ResponseCache using a plain GET.
//
// Returns harvest.ErrCacheMiss when the key does not exist, harvest.ErrCorruptCacheEntry when
// the stored value is not valid JSON, or the Redis error if the command fails.
func (c *client) Load(ctx context.Context, key harvest.CacheKey) (json.RawMessage, error) {
	rkey := responseStorageKey(key)

	data, err := c.conn.Get(ctx, rkey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, harvest.ErrCacheMiss
		}

		return nil, err
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", harvest.ErrCorruptCacheEntry, rkey)
	}

	return json.RawMessage(data), nil
}

// Store implements harvest.ResponseCache using SET without expiration:
// cached responses are kept until removed by hand.
func (c *client) Store(ctx context.Context, key harvest.CacheKey, doc json.RawMessage) error {
	return c.conn.Set(ctx, responseStorageKey(key), []byte(doc), 0).Err()
}
