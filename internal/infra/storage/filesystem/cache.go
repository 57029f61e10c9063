package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabapcia/txharvest/internal/harvest"
)

const (
	// cacheFileExt is appended to every cache entry name.
	cacheFileExt = ".json"

	cacheDirPerm  os.FileMode = 0o755
	cacheFilePerm os.FileMode = 0o644
)

// ErrInvalidCacheKey is returned for keys whose file would land outside the cache directory.
var ErrInvalidCacheKey = errors.New("invalid cache key")

// cache keeps one JSON file per wallet and transaction kind, named after harvest.CacheKey.Name.
type cache struct {
	dir string
}

// Compile-time assertion that cache implements harvest.ResponseCache.
var _ harvest.ResponseCache = (*cache)(nil)

// path returns the file backing key.
func (c *cache) path(key harvest.CacheKey) (string, error) {
	name := key.Name() + cacheFileExt
	if key.Address == "" || strings.ContainsAny(key.Address, `/\`) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCacheKey, key.Address)
	}

	return filepath.Join(c.dir, name), nil
}

// Load reads the cached response for key.
//
// Returns harvest.ErrCacheMiss when the file does not exist and harvest.ErrCorruptCacheEntry
// when its content is not valid JSON.
func (c *cache) Load(_ context.Context, key harvest.CacheKey) (json.RawMessage, error) {
	path, err := c.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, harvest.ErrCacheMiss
		}

		return nil, err
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", harvest.ErrCorruptCacheEntry, path)
	}

	return json.RawMessage(data), nil
}

// Store writes doc unmodified to the file of key, replacing any previous content.
func (c *cache) Store(_ context.Context, key harvest.CacheKey, doc json.RawMessage) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, doc, cacheFilePerm)
}

// NewCache returns a response cache rooted at dir, creating the directory if needed.
func NewCache(dir string) (*cache, error) {
	if err := os.MkdirAll(dir, cacheDirPerm); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &cache{dir: dir}, nil
}
