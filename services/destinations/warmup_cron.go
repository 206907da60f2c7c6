package destinations

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/utils"
)

const warmupLimitPerCategory = 4

// бюджет по умолчанию у новых предпочтений, с ним приходит большинство запросов
var warmupBudget = models.BudgetMid

// StartArrivalWarmupCron по cron-выражению прогревает кэш выдачи прилета
// для направлений ближайших 7 дней. Первый прогон сразу после старта.
func StartArrivalWarmupCron(db *gorm.DB, provider Provider, spec string, loc *time.Location) (*cron.Cron, error) {
	go WarmArrivalCache(context.Background(), db, provider, utils.Today(loc))

	c := cron.New(cron.WithLocation(locOrUTC(loc)))
	_, err := c.AddFunc(spec, func() {
		WarmArrivalCache(context.Background(), db, provider, utils.Today(loc))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	utils.Log.Info().Str("spec", spec).Msg("[WARMUP CRON] Scheduler started")
	return c, nil
}

// WarmArrivalCache возвращает число успешно прогретых пар (город, категория)
func WarmArrivalCache(ctx context.Context, db *gorm.DB, provider Provider, today models.Date) int {
	var cities []string
	err := db.WithContext(ctx).Model(&models.Booking{}).
		Where("depart_date >= ? AND depart_date <= ?", today, today.AddDays(7)).
		Distinct().
		Order("destination").
		Pluck("destination", &cities).Error
	if err != nil {
		utils.LogError(err, "warmup: load upcoming destinations")
		return 0
	}

	warmed := 0
	for _, city := range cities {
		for _, category := range models.ArrivalCategories {
			if _, err := provider.Search(ctx, city, category, &warmupBudget, warmupLimitPerCategory); err != nil {
				utils.Log.Warn().Err(err).Str("city", city).Str("category", category).Msg("[WARMUP CRON] search failed")
				continue
			}
			warmed++
		}
	}

	utils.Log.Info().Int("cities", len(cities)).Int("warmed", warmed).Msg("[WARMUP CRON] Refresh complete")
	return warmed
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
