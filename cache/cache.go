package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/notnotrachit/GrowwwStocks/storage"
)

// KeyPrefix namespaces every cache entry in the shared key-value store, so
// Clear cannot touch unrelated persisted state.
const KeyPrefix = "cache_"

// entry wraps a cached payload with its write time and expiry, both in
// epoch milliseconds.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	ExpiresAt int64           `json:"expiresAt"`
}

// Cache is a best-effort persistent cache with per-entry expiration.
// Storage failures are logged and swallowed: a broken cache degrades to a
// cache that always misses, never to a failing caller.
type Cache struct {
	store  storage.KVStore
	logger *zap.Logger
	now    func() time.Time
}

// New creates a Cache over the given store.
func New(store storage.KVStore, logger *zap.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (c *Cache) cacheKey(key string) string {
	return KeyPrefix + key
}

// Set stores data under key for the given duration. Expired entries are
// collected lazily by Get; there is no background sweep.
func (c *Cache) Set(ctx context.Context, key string, data interface{}, duration time.Duration) {
	raw, err := json.Marshal(data)
	if err != nil {
		c.logger.Warn("Cache set error", zap.String("key", key), zap.Error(err))
		return
	}
	now := c.now().UnixMilli()
	item := entry{
		Data:      raw,
		Timestamp: now,
		ExpiresAt: now + duration.Milliseconds(),
	}
	encoded, err := json.Marshal(item)
	if err != nil {
		c.logger.Warn("Cache set error", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, c.cacheKey(key), string(encoded)); err != nil {
		c.logger.Warn("Cache set error", zap.String("key", key), zap.Error(err))
	}
}

// Get loads the entry for key into out and reports whether it was a hit.
// An entry past its expiry behaves as a miss and is removed.
func (c *Cache) Get(ctx context.Context, key string, out interface{}) bool {
	cached, ok, err := c.store.Get(ctx, c.cacheKey(key))
	if err != nil {
		c.logger.Warn("Cache get error", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	var item entry
	if err := json.Unmarshal([]byte(cached), &item); err != nil {
		c.logger.Warn("Cache entry corrupt", zap.String("key", key), zap.Error(err))
		c.Remove(ctx, key)
		return false
	}

	if c.now().UnixMilli() > item.ExpiresAt {
		c.Remove(ctx, key)
		return false
	}

	if err := json.Unmarshal(item.Data, out); err != nil {
		c.logger.Warn("Cache entry corrupt", zap.String("key", key), zap.Error(err))
		c.Remove(ctx, key)
		return false
	}
	return true
}

// Remove deletes the entry for key.
func (c *Cache) Remove(ctx context.Context, key string) {
	if err := c.store.Remove(ctx, c.cacheKey(key)); err != nil {
		c.logger.Warn("Cache remove error", zap.String("key", key), zap.Error(err))
	}
}

// Clear removes every entry under the cache namespace, leaving unrelated
// persisted data untouched.
func (c *Cache) Clear(ctx context.Context) {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		c.logger.Warn("Cache clear error", zap.Error(err))
		return
	}
	cacheKeys := []string{}
	for _, key := range keys {
		if strings.HasPrefix(key, KeyPrefix) {
			cacheKeys = append(cacheKeys, key)
		}
	}
	if len(cacheKeys) == 0 {
		return
	}
	if err := c.store.MultiRemove(ctx, cacheKeys); err != nil {
		c.logger.Warn("Cache clear error", zap.Error(err))
	}
}
