// Package destinations рекомендации по месту назначения: провайдеры данных,
// кэш в Redis и персонализированное ранжирование.
package destinations

import (
	"context"
	"sort"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/salahou-dine/hon-hon/config"
	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/utils"
)

// Provider источник элементов рекомендаций по городу и категории.
// budget: low / mid / high или nil (без фильтра).
type Provider interface {
	Search(ctx context.Context, city, category string, budget *string, limit int) ([]models.DestinationItem, error)
}

// nearestFirst общий порядок выдачи провайдеров: сначала ближайшие, затем лучший рейтинг.
// Отрицательный limit не обрезает список.
func nearestFirst(items []models.DestinationItem, limit int) []models.DestinationItem {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DistanceKm != items[j].DistanceKm {
			return items[i].DistanceKm < items[j].DistanceKm
		}
		return items[i].Rating > items[j].Rating
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// NewProvider выбирает провайдер по cfg.DestProvider; неизвестное значение - mock.
// При наличии Redis ответы кэшируются.
func NewProvider(cfg *config.Config, rdb *redis.Client) Provider {
	var p Provider
	switch cfg.DestProvider {
	case config.ProviderPlaces:
		if cfg.PlacesAPIURL == "" {
			utils.Log.Warn().Msg("DEST_PROVIDER=places but PLACES_API_URL is empty, falling back to mock")
			p = NewMockProvider()
			break
		}
		p = NewPlacesProvider(cfg.PlacesAPIURL, cfg.PlacesAPIKey)
	default:
		p = NewMockProvider()
	}

	if rdb != nil {
		return NewCachedProvider(p, rdb, cfg.DestCacheTTL)
	}
	return p
}

func normalizeBudgetPtr(budget *string) *string {
	if budget == nil {
		return nil
	}
	b := models.NormalizeBudget(*budget)
	if b == "" {
		return nil
	}
	return &b
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
