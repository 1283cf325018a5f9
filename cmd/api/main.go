package main

// @title WakeMeUp Transit API
// @version 1.0.0
// @description Поиск ближайших остановок общественного транспорта Виктории (PTV Timetable API v3), маршрутов остановки и расчёт времени будильника.
// @description
// @description Основные возможности:
// @description - Ближайшие остановки поезда, трамвая или автобуса, по возрастанию расстояния
// @description - Маршруты, обслуживающие остановку
// @description - Расчёт времени будильника перед отправлением

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhlee0214/wakemeup/docs"
	"github.com/jhlee0214/wakemeup/internal/bootstrap"
	"github.com/jhlee0214/wakemeup/internal/config"
	httpDelivery "github.com/jhlee0214/wakemeup/internal/delivery/http"
	"github.com/jhlee0214/wakemeup/internal/delivery/http/handler"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/logger"
	"github.com/jhlee0214/wakemeup/internal/pkg/report"
	"github.com/jhlee0214/wakemeup/internal/repository/cache"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "wakemeup-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := report.Setup(&cfg.Sentry, cfg.Server.Env, "wakemeup-api"); err != nil {
		log.Fatal("Failed to initialize Sentry", zap.Error(err))
	}
	defer report.Flush()

	log.Info("Starting WakeMeUp API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("transit_source", cfg.Transit.Source),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Connect to Redis (only when caching is on)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		cacheHealth handler.HealthChecker
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient, cfg.Cache.KeyPrefix)
		cacheHealth = redisClient
		log.Info("Redis connected")
	}

	// 4. Transit data source
	source, err := bootstrap.NewTransitSource(cfg, cacheRepo, log)
	if err != nil {
		log.Fatal("Failed to initialize transit data source", zap.Error(err))
	}

	// 5. Use cases
	stopUC := usecase.NewStopUseCase(source, &cfg.Transit, log)
	routeUC := usecase.NewRouteUseCase(source, &cfg.Transit, log)
	alarmUC := usecase.NewAlarmUseCase(&cfg.Alarm, log)

	log.Info("Use cases initialized")

	// 6. HTTP handlers
	healthHandler := handler.NewHealthHandler(cfg.Transit.Source, cacheHealth, log)
	stopHandler := handler.NewStopHandler(stopUC, routeUC, log)
	alarmHandler := handler.NewAlarmHandler(alarmUC, log)

	// 7. HTTP server
	server := httpDelivery.NewServer(cfg, log, healthHandler, stopHandler, alarmHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
