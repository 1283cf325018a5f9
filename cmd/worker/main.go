package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhlee0214/wakemeup/internal/bootstrap"
	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/logger"
	"github.com/jhlee0214/wakemeup/internal/pkg/report"
	"github.com/jhlee0214/wakemeup/internal/repository/cache"
	redisRepo "github.com/jhlee0214/wakemeup/internal/repository/redis"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"github.com/jhlee0214/wakemeup/internal/worker"
	"github.com/jhlee0214/wakemeup/internal/worker/lookup"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "wakemeup-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := report.Setup(&cfg.Sentry, cfg.Server.Env, "wakemeup-worker"); err != nil {
		log.Fatal("Failed to initialize Sentry", zap.Error(err))
	}
	defer report.Flush()

	log.Info("Starting stop lookup worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("read_timeout", cfg.Worker.StreamReadTimeout),
		zap.Duration("claim_min_idle", cfg.Worker.ClaimMinIdle),
		zap.String("transit_source", cfg.Transit.Source))

	// 3. Connect to Redis (streams always, cache when enabled)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	var cacheRepo repository.CacheRepository
	if cfg.Cache.Enabled {
		cacheRepo = cache.NewCacheRepository(redisClient, cfg.Cache.KeyPrefix)
	}

	source, err := bootstrap.NewTransitSource(cfg, cacheRepo, log)
	if err != nil {
		log.Fatal("Failed to initialize transit data source", zap.Error(err))
	}

	// 5. Initialize use cases
	stopUC := usecase.NewStopUseCase(source, &cfg.Transit, log)

	// 6. Initialize workers
	lookupWorker := lookup.NewStopLookupWorker(
		streamRepo,
		stopUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.StreamReadTimeout,
		cfg.Worker.ClaimMinIdle,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(lookupWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
