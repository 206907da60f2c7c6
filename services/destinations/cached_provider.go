package destinations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/utils"
)

const defaultCacheTTL = 30 * time.Minute

// CachedProvider кэширует ответы провайдера в Redis.
// Ошибки Redis не ломают поиск: запрос уходит в обернутый провайдер.
type CachedProvider struct {
	next Provider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedProvider(next Provider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedProvider{next: next, rdb: rdb, ttl: ttl}
}

// CacheKey destinations:search:{city}:{category}:{budget}:{limit}
func CacheKey(city, category string, budget *string, limit int) string {
	b := "any"
	if nb := normalizeBudgetPtr(budget); nb != nil {
		b = *nb
	}
	return fmt.Sprintf("destinations:search:%s:%s:%s:%d", city, category, b, limit)
}

func (p *CachedProvider) Search(ctx context.Context, city, category string, budget *string, limit int) ([]models.DestinationItem, error) {
	key := CacheKey(city, category, budget, limit)

	cached, err := p.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil && len(cached) > 0:
		var items []models.DestinationItem
		if jsonErr := json.Unmarshal(cached, &items); jsonErr == nil {
			utils.DestinationSearches.WithLabelValues(category, "hit").Inc()
			return items, nil
		}
	case err != nil && err != redis.Nil:
		utils.Log.Warn().Err(err).Str("key", key).Msg("destinations cache read failed")
		utils.DestinationSearches.WithLabelValues(category, "bypass").Inc()
		return p.next.Search(ctx, city, category, budget, limit)
	}

	utils.DestinationSearches.WithLabelValues(category, "miss").Inc()
	items, err := p.next.Search(ctx, city, category, budget, limit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := p.rdb.Set(ctx, key, raw, p.ttl).Err(); err != nil {
			utils.Log.Warn().Err(err).Str("key", key).Msg("destinations cache write failed")
		}
	}
	return items, nil
}
