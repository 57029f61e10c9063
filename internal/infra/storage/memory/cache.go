// Package memory implements a process-local harvest.ResponseCache.
//
// Entries live as long as the process, which makes it suited to dry runs
// and tests; nothing is written to disk.
package memory

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/gabapcia/txharvest/internal/harvest"

	gocache "github.com/patrickmn/go-cache"
)

// cache wraps a go-cache store whose entries never expire.
type cache struct {
	store *gocache.Cache
}

// Compile-time assertion that cache implements harvest.ResponseCache.
var _ harvest.ResponseCache = (*cache)(nil)

// Load returns a copy of the document stored for key, or harvest.ErrCacheMiss.
func (c *cache) Load(_ context.Context, key harvest.CacheKey) (json.RawMessage, error) {
	value, ok := c.store.Get(key.Name())
	if !ok {
		return nil, harvest.ErrCacheMiss
	}

	return slices.Clone(value.(json.RawMessage)), nil
}

// Store keeps a copy of doc under key without expiration.
func (c *cache) Store(_ context.Context, key harvest.CacheKey, doc json.RawMessage) error {
	c.store.Set(key.Name(), slices.Clone(doc), gocache.NoExpiration)
	return nil
}

// NewCache returns an empty in-memory response cache.
func NewCache() *cache {
	return &cache{
		store: gocache.New(gocache.NoExpiration, 0),
	}
}
