package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/config"
	"github.com/salahou-dine/hon-hon/controllers"
	"github.com/salahou-dine/hon-hon/middleware"
	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/services"
	"github.com/salahou-dine/hon-hon/services/destinations"
	"github.com/salahou-dine/hon-hon/utils"
)

// Deps зависимости роутера, собираются в main
type Deps struct {
	Cfg      *config.Config
	DB       *gorm.DB
	RDB      *redis.Client
	Provider destinations.Provider
	Notifier services.BookingNotifier
	// Today текущая дата для фаз поездки; nil - по часовому поясу из конфига
	Today func() models.Date
}

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(d Deps) *gin.Engine {
	utils.RegisterValidators()

	r := gin.New()
	r.Use(gin.Logger(), middleware.RecoveryMiddleware(), utils.MetricsMiddleware())

	// CORS middleware ДО роутов
	r.Use(cors.New(corsConfig(d.Cfg.CORSOrigins)))

	today := d.Today
	if today == nil {
		loc := utils.LoadLocation(d.Cfg.Timezone)
		today = func() models.Date { return utils.Today(loc) }
	}

	preferenceService := services.NewPreferenceService(d.DB)
	consentService := services.NewConsentService(d.DB)
	feedbackService := services.NewFeedbackService(d.DB)
	bookingService := services.NewBookingService(d.DB, d.Notifier)
	userService := services.NewUserService(d.DB)
	historyService := services.NewSearchHistoryService(d.DB)
	ranker := destinations.NewRanker(d.Provider, preferenceService, consentService, feedbackService)

	authController := controllers.NewAuthController(userService, d.RDB, d.Cfg, controllers.NewGoogleOAuthConfig(d.Cfg))
	bookingController := controllers.NewBookingController(bookingService)
	preferenceController := controllers.NewPreferenceController(preferenceService, consentService)
	feedbackController := controllers.NewFeedbackController(feedbackService)
	destinationController := controllers.NewDestinationController(ranker, historyService)
	tripController := controllers.NewTripController(bookingService, today)
	healthController := controllers.NewHealthController(d.Cfg)

	r.GET("/", healthController.Root)
	r.GET("/metrics", middleware.StaticTokenMiddleware(d.Cfg.MetricsToken), utils.MetricsHandler())

	api := r.Group("/api/v1")
	api.GET("/health", healthController.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/guest", authController.Guest)
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/google", authController.GoogleLogin)
		auth.GET("/google/callback", authController.GoogleCallback)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(d.Cfg.JWTSecret, d.RDB))
	{
		protected.GET("/auth/me", authController.Me)
		protected.POST("/auth/logout", authController.Logout)

		bookings := protected.Group("/bookings")
		{
			bookings.POST("", bookingController.Create)
			bookings.POST("/", bookingController.Create)
			bookings.GET("", bookingController.List)
			bookings.GET("/", bookingController.List)
			bookings.GET("/:id", bookingController.Get)
			bookings.PUT("/:id", bookingController.Update)
		}

		protected.GET("/preferences", preferenceController.GetPreferences)
		protected.POST("/preferences", preferenceController.UpsertPreferences)
		protected.GET("/privacy/consent", preferenceController.GetConsent)
		protected.POST("/privacy/consent", preferenceController.UpsertConsent)

		protected.POST("/feedback", feedbackController.Upsert)
		protected.GET("/feedback", feedbackController.List)

		dest := protected.Group("/destinations")
		{
			dest.GET("/recommendations", destinationController.Recommendations)
			dest.GET("/arrival", destinationController.Arrival)
			dest.GET("/history", destinationController.History)
		}

		protected.GET("/recommendations/post-booking", tripController.PostBooking)

		protected.GET("/my-trips/timeline", tripController.CurrentTimeline)
		protected.GET("/my-trips/:id/timeline", tripController.BookingTimeline)

		protected.GET("/travel-info/check-in", tripController.CheckIn)
		protected.GET("/travel-info/departure-day", tripController.DepartureDay)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
