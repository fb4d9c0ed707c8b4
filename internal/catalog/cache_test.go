package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/common/database"
	"readiness-workers/internal/common/logger"
)

func setupRedisStore(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func countingLoader(calls *int, doc string) LoadFunc {
	return func(ctx context.Context) (*Grouping, error) {
		*calls++
		return ParseCatalog(strings.NewReader(doc)), nil
	}
}

func TestCache_LoadsOnceThenServesFromMemory(t *testing.T) {
	cache := NewCache(nil, time.Minute, logger.NewTestLogger(t))
	ctx := context.Background()
	calls := 0

	g, hit, err := cache.GetOrLoad(ctx, "core:global", countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 4, g.Len())

	g2, hit, err := cache.GetOrLoad(ctx, "core:global", countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 4, g2.Len())
	assert.Equal(t, 1, calls)

	// callers get copies
	g2.Pillars[0].Name = "changed"
	g3, _, _ := cache.GetOrLoad(ctx, "core:global", countingLoader(&calls, coreCSV))
	assert.Equal(t, "Data Readiness", g3.Pillars[0].Name)
}

func TestCache_SharedThroughRedis(t *testing.T) {
	mr, store := setupRedisStore(t)
	ctx := context.Background()
	calls := 0

	first := NewCache(store, time.Minute, logger.NewNoOpLogger())
	_, _, err := first.GetOrLoad(ctx, CacheKey("regional", "Europe"), countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.True(t, mr.Exists("catalog:regional:europe"))

	second := NewCache(store, time.Minute, logger.NewNoOpLogger())
	g, hit, err := second.GetOrLoad(ctx, CacheKey("regional", "Europe"), countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 1, calls)
}

func TestCache_Invalidate(t *testing.T) {
	mr, store := setupRedisStore(t)
	ctx := context.Background()
	cache := NewCache(store, time.Minute, logger.NewNoOpLogger())
	calls := 0
	key := CacheKey("core", "")

	_, _, err := cache.GetOrLoad(ctx, key, countingLoader(&calls, coreCSV))
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, key))
	assert.False(t, mr.Exists("catalog:"+key))

	_, hit, err := cache.GetOrLoad(ctx, key, countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestCache_InvalidateAll(t *testing.T) {
	mr, store := setupRedisStore(t)
	ctx := context.Background()
	cache := NewCache(store, time.Minute, logger.NewNoOpLogger())
	calls := 0

	for _, region := range []string{"global", "europe", "middle east"} {
		_, _, err := cache.GetOrLoad(ctx, CacheKey("regional", region), countingLoader(&calls, coreCSV))
		require.NoError(t, err)
	}
	assert.Len(t, mr.Keys(), 3)

	require.NoError(t, cache.InvalidateAll(ctx))
	assert.Empty(t, mr.Keys())

	_, hit, err := cache.GetOrLoad(ctx, CacheKey("regional", "europe"), countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 4, calls)
}

func TestCache_ExpiresFromMemory(t *testing.T) {
	cache := NewCache(nil, time.Minute, logger.NewNoOpLogger())
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()
	calls := 0

	_, _, err := cache.GetOrLoad(ctx, "k", countingLoader(&calls, coreCSV))
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, hit, err := cache.GetOrLoad(ctx, "k", countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestCache_EmptyResultsAreNotCached(t *testing.T) {
	cache := NewCache(nil, time.Minute, logger.NewNoOpLogger())
	ctx := context.Background()
	calls := 0

	for i := 0; i < 2; i++ {
		g, hit, err := cache.GetOrLoad(ctx, "k", countingLoader(&calls, ""))
		require.NoError(t, err)
		assert.False(t, hit)
		assert.True(t, g.Empty())
	}
	assert.Equal(t, 2, calls)
}

func TestCache_LoaderErrorPropagates(t *testing.T) {
	cache := NewCache(nil, time.Minute, logger.NewNoOpLogger())
	boom := errors.New("source unavailable")

	g, hit, err := cache.GetOrLoad(context.Background(), "k", func(ctx context.Context) (*Grouping, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, hit)
	assert.Nil(t, g)
}

type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (brokenStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) Del(ctx context.Context, keys ...string) error {
	return errors.New("connection refused")
}

func TestCache_StoreFailureFallsBackToLoader(t *testing.T) {
	cache := NewCache(brokenStore{}, time.Minute, logger.NewTestLogger(t))
	ctx := context.Background()
	calls := 0

	g, hit, err := cache.GetOrLoad(ctx, "k", countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 4, g.Len())

	// memory layer still works
	_, hit, err = cache.GetOrLoad(ctx, "k", countingLoader(&calls, coreCSV))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, calls)

	assert.Error(t, cache.Invalidate(ctx, "k"))
}

func TestCacheKey_NormalizesRegion(t *testing.T) {
	assert.Equal(t, "regional:global", CacheKey("regional", ""))
	assert.Equal(t, "regional:middle east", CacheKey("regional", "  Middle East "))
}
