// Package bootstrap assembles the transit data source shared by cmd/api and cmd/worker.
package bootstrap

import (
	"fmt"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/infrastructure/ptv"
	"github.com/jhlee0214/wakemeup/internal/repository/fixture"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"go.uber.org/zap"
)

// NewTransitSource builds the configured source and wraps it:
// cache (when cacheRepo is non-nil) -> retry (when TRANSIT_MAX_RETRIES > 0) -> source.
func NewTransitSource(
	cfg *config.Config,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) (repository.TransitDataSource, error) {
	var source repository.TransitDataSource

	switch cfg.Transit.Source {
	case config.TransitSourcePTV:
		source = ptv.NewPTVClient(&cfg.Transit, logger)
	case config.TransitSourceFixture:
		fx, err := fixture.Load(cfg.Transit.FixturePath, logger)
		if err != nil {
			return nil, err
		}
		source = fx
	default:
		return nil, fmt.Errorf("unknown transit source %q", cfg.Transit.Source)
	}

	if cfg.Transit.MaxRetries > 0 {
		source = usecase.NewRetryingSource(source, cfg.Transit.MaxRetries, cfg.Transit.RetryBackoff, logger)
	}

	if cacheRepo != nil {
		source = usecase.NewCachedSource(source, cacheRepo, &cfg.Cache, logger)
	}

	logger.Info("Transit source ready",
		zap.String("source", cfg.Transit.Source),
		zap.Int("max_retries", cfg.Transit.MaxRetries),
		zap.Bool("cache", cacheRepo != nil))

	return source, nil
}
