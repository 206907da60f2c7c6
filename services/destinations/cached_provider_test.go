package destinations

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahou-dine/hon-hon/models"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "destinations:search:Paris:hotel:any:10", CacheKey("Paris", "hotel", nil, 10))
	assert.Equal(t, "destinations:search:Paris:hotel:low:4", CacheKey("Paris", "hotel", strPtr("LOW"), 4))
	assert.Equal(t, "destinations:search:Paris:hotel:any:4", CacheKey("Paris", "hotel", strPtr("cheap"), 4))
}

func TestCachedProviderHitAfterMiss(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	stub := &stubProvider{items: map[string][]models.DestinationItem{"hotel": {item("h1", 4.2, 1.1)}}}
	p := NewCachedProvider(stub, rdb, 10*time.Minute)

	first, err := p.Search(context.Background(), "Paris", "hotel", nil, 5)
	require.NoError(t, err)
	second, err := p.Search(context.Background(), "Paris", "hotel", nil, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, stub.calls, 1)
	assert.True(t, mr.Exists("destinations:search:Paris:hotel:any:5"))
	assert.Equal(t, 10*time.Minute, mr.TTL("destinations:search:Paris:hotel:any:5"))
}

func TestCachedProviderDoesNotCacheErrors(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	stub := &stubProvider{err: errProviderDown}
	p := NewCachedProvider(stub, rdb, time.Minute)

	_, err := p.Search(context.Background(), "Paris", "hotel", nil, 5)

	assert.ErrorIs(t, err, errProviderDown)
	assert.Empty(t, mr.Keys())
}

func TestCachedProviderRedisDownFallsThrough(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	stub := &stubProvider{items: map[string][]models.DestinationItem{"hotel": {item("h1", 4.2, 1.1)}}}
	p := NewCachedProvider(stub, rdb, time.Minute)
	mr.Close()

	items, err := p.Search(context.Background(), "Paris", "hotel", nil, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"h1"}, itemIDs(items))
}
