package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webex_gacha/internal/config"
	"webex_gacha/internal/dedup"
	"webex_gacha/internal/game"
	httpServer "webex_gacha/internal/http"
	"webex_gacha/internal/http/middleware"
	"webex_gacha/internal/ledger"
	"webex_gacha/internal/logger"
	"webex_gacha/internal/service"
	"webex_gacha/internal/webex"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	rdb := middleware.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb == nil && cfg.RedisAddr != "" {
		logger.Warn("redis unreachable, falling back to in-memory dedup and rate limiting", "addr", cfg.RedisAddr)
	}

	engine, err := game.NewEngine(game.DefaultCatalog())
	if err != nil {
		logger.Fatal("invalid prize catalog", "error", err)
	}

	gateway := webex.NewClient(cfg.WebexAPIURL, cfg.BotAccessToken, cfg.RequestTimeout)
	store := ledger.NewMemoryLedger()
	cache := dedup.New(rdb, cfg.DedupTTL)
	dispatcher := service.NewDispatcher(gateway, store, engine, cache, cfg.BotMarker)

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	httpServer.RegisterRoutes(r, dispatcher, rdb, cfg, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
