package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salahou-dine/hon-hon/config"
	"github.com/salahou-dine/hon-hon/database"
	"github.com/salahou-dine/hon-hon/routes"
	"github.com/salahou-dine/hon-hon/services"
	"github.com/salahou-dine/hon-hon/services/destinations"
	"github.com/salahou-dine/hon-hon/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		utils.Log.Warn().Err(err).Msg("file loggers disabled")
	}

	cfg := config.LoadConfig()
	loc := utils.LoadLocation(cfg.Timezone)

	// Подключение к БД
	db, err := database.Open(cfg.DBDriver, cfg.DSN(), false)
	if err != nil {
		utils.Log.Fatal().Err(err).Msg("failed to connect to database")
	}
	utils.Log.Info().Str("driver", cfg.DBDriver).Msg("Connected to database")

	// Миграция
	if err := database.Migrate(db); err != nil {
		utils.Log.Fatal().Err(err).Msg("failed to migrate")
	}
	utils.Log.Info().Msg("Migration complete")

	if cfg.SeedDemo {
		n, err := database.SeedDemoBookings(db, utils.Today(loc))
		if err != nil {
			utils.Log.Fatal().Err(err).Msg("failed to seed demo bookings")
		}
		utils.Log.Info().Int("created", n).Msg("Demo bookings seeded (if needed)")
	}

	// Подключение к Redis; без него работаем без кэша, лимитов и logout
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		utils.Log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, continuing without it")
		_ = rdb.Close()
		rdb = nil
	} else {
		utils.Log.Info().Msg("Connected to Redis")
	}
	cancel()

	provider := destinations.NewProvider(cfg, rdb)

	// прогрев кэша имеет смысл только с Redis
	if rdb != nil {
		c, err := destinations.StartArrivalWarmupCron(db, provider, cfg.WarmupCron, loc)
		if err != nil {
			utils.Log.Error().Err(err).Msg("arrival warm-up cron not started")
		} else {
			defer c.Stop()
		}
	}

	r := routes.SetupRouter(routes.Deps{
		Cfg:      cfg,
		DB:       db,
		RDB:      rdb,
		Provider: provider,
		Notifier: services.NewEmailNotifier(cfg.SMTP()),
	})

	utils.Log.Info().Str("port", cfg.Port).Msg("Server is running")
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Log.Fatal().Err(err).Msg("Failed to run server")
	}
}
