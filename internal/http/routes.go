package http

import (
	"webex_gacha/internal/config"
	"webex_gacha/internal/http/handlers"
	"webex_gacha/internal/http/middleware"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the webhook endpoint and health probes. rdb may be nil;
// rate limiting then falls back to the in-memory limiter.
func RegisterRoutes(r *gin.Engine, dispatcher handlers.EventDispatcher, rdb *redis.Client, cfg *config.Config, version string) {
	healthHandler := handlers.NewHealthHandler(rdb, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	rateLimit := middleware.SimpleRateLimit(cfg.RateLimit, cfg.RateWindow)
	if rdb != nil {
		rateLimit = middleware.RedisRateLimit(cfg.RateLimit, cfg.RateWindow)
	}

	webhookHandler := handlers.NewWebhookHandler(dispatcher)
	r.POST("/webhook", rateLimit, webhookHandler.Webhook)
}
