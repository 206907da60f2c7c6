package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "companion_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "companion_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// DestinationSearches обращения к провайдеру направлений (cache: hit/miss/bypass)
	DestinationSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "companion_destination_searches_total",
		Help: "Destination provider searches by category and cache outcome.",
	}, []string{"category", "cache"})

	// ConsentDenials отказы из-за выключенного согласия
	ConsentDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "companion_consent_denials_total",
		Help: "Recommendation requests rejected because consent is disabled.",
	})
)

// MetricsMiddleware считает запросы по шаблону маршрута
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler отдает /metrics
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
