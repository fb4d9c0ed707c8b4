package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
)

// CacheStore is the shared second level behind the in-process cache.
// *database.RedisClient satisfies it.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// LoadFunc produces a grouping on a cache miss.
type LoadFunc func(ctx context.Context) (*Grouping, error)

const cacheKeyPrefix = "catalog:"

type cacheEntry struct {
	grouping *Grouping
	expires  time.Time
}

// Cache holds parsed catalogs keyed by source and region. It is owned by the
// catalog loader and must be invalidated explicitly when the sources change.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	known   map[string]struct{}
	store   CacheStore
	ttl     time.Duration
	log     logger.Logger
	now     func() time.Time
}

// NewCache creates a cache. store may be nil for a process-local cache.
func NewCache(store CacheStore, ttl time.Duration, log logger.Logger) *Cache {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		known:   make(map[string]struct{}),
		store:   store,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

// CacheKey builds the key for a source/region pair.
func CacheKey(source, region string) string {
	return fmt.Sprintf("%s:%s", source, NormalizeRegion(region))
}

// GetOrLoad returns the cached grouping for key, or calls load and caches a
// non-empty result. The bool reports a cache hit. Store failures fall through
// to load.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load LoadFunc) (*Grouping, bool, error) {
	if g, ok := c.fromMemory(key); ok {
		metrics.CatalogCacheRequests.WithLabelValues("memory_hit").Inc()
		return g, true, nil
	}

	if g, ok := c.fromStore(ctx, key); ok {
		metrics.CatalogCacheRequests.WithLabelValues("store_hit").Inc()
		c.remember(key, g)
		return g.Clone(), true, nil
	}

	metrics.CatalogCacheRequests.WithLabelValues("miss").Inc()
	g, err := load(ctx)
	if err != nil {
		return nil, false, err
	}
	if g.Empty() {
		return g, false, nil
	}

	c.remember(key, g)
	c.toStore(ctx, key, g)
	return g.Clone(), false, nil
}

// Invalidate drops key from both levels.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	delete(c.known, key)
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if err := c.store.Del(ctx, cacheKeyPrefix+key); err != nil {
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	return nil
}

// InvalidateAll drops every key this cache has written.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	keys := make([]string, 0, len(c.known))
	for k := range c.known {
		keys = append(keys, cacheKeyPrefix+k)
	}
	c.entries = make(map[string]cacheEntry)
	c.known = make(map[string]struct{})
	c.mu.Unlock()

	if c.store == nil || len(keys) == 0 {
		return nil
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		return fmt.Errorf("invalidate all: %w", err)
	}
	return nil
}

func (c *Cache) fromMemory(key string) (*Grouping, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.grouping.Clone(), true
}

func (c *Cache) remember(key string, g *Grouping) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{grouping: g.Clone(), expires: c.now().Add(c.ttl)}
	c.known[key] = struct{}{}
}

func (c *Cache) fromStore(ctx context.Context, key string) (*Grouping, bool) {
	if c.store == nil {
		return nil, false
	}
	raw, err := c.store.Get(ctx, cacheKeyPrefix+key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("catalog cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	var g Grouping
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		c.log.Warn("catalog cache entry unreadable", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}
	return &g, true
}

func (c *Cache) toStore(ctx context.Context, key string, g *Grouping) {
	if c.store == nil {
		return
	}
	data, err := json.Marshal(g)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, cacheKeyPrefix+key, data, c.ttl); err != nil {
		c.log.Warn("catalog cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
