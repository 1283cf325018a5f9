package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKindStops  = "stops"
	cacheKindRoutes = "routes"

	cacheResultHit  = "hit"
	cacheResultMiss = "miss"
)

// CachedSource caches raw stop and route lists by full query and coalesces
// identical in-flight queries. Ranking is left to the caller and never cached.
// Cache failures are logged and fall through to the wrapped source.
type CachedSource struct {
	next      repository.TransitDataSource
	cache     repository.CacheRepository
	group     singleflight.Group
	stopsTTL  time.Duration
	routesTTL time.Duration
	logger    *zap.Logger
}

func NewCachedSource(
	next repository.TransitDataSource,
	cache repository.CacheRepository,
	cfg *config.CacheConfig,
	logger *zap.Logger,
) *CachedSource {
	return &CachedSource{
		next:      next,
		cache:     cache,
		stopsTTL:  cfg.StopsCacheTTL,
		routesTTL: cfg.RoutesCacheTTL,
		logger:    logger,
	}
}

func (s *CachedSource) FindStopsNear(
	ctx context.Context,
	q repository.StopQuery,
	creds domain.Credentials,
) ([]domain.Stop, error) {
	key := stopsCacheKey(q)

	var cached []domain.Stop
	if s.lookup(ctx, cacheKindStops, key, &cached) {
		return cached, nil
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		stops, err := s.next.FindStopsNear(ctx, q, creds)
		if err != nil {
			return nil, err
		}
		s.store(ctx, key, stops, s.stopsTTL)
		return stops, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Coalesced stops lookup", zap.String("key", key))
	}

	stops := v.([]domain.Stop)
	return append(make([]domain.Stop, 0, len(stops)), stops...), nil
}

func (s *CachedSource) FindRoutesForStop(
	ctx context.Context,
	stopID int64,
	mode domain.TransportMode,
	creds domain.Credentials,
) ([]domain.Route, error) {
	key := routesCacheKey(stopID, mode)

	var cached []domain.Route
	if s.lookup(ctx, cacheKindRoutes, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		routes, err := s.next.FindRoutesForStop(ctx, stopID, mode, creds)
		if err != nil {
			return nil, err
		}
		s.store(ctx, key, routes, s.routesTTL)
		return routes, nil
	})
	if err != nil {
		return nil, err
	}

	routes := v.([]domain.Route)
	return append(make([]domain.Route, 0, len(routes)), routes...), nil
}

// lookup decodes a cached value into out and reports a hit
func (s *CachedSource) lookup(ctx context.Context, kind, key string, out interface{}) bool {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Transit cache read failed", zap.String("key", key), zap.Error(err))
		metrics.CacheLookups.WithLabelValues(kind, cacheResultMiss).Inc()
		return false
	}
	if data == nil {
		metrics.CacheLookups.WithLabelValues(kind, cacheResultMiss).Inc()
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		metrics.CacheLookups.WithLabelValues(kind, cacheResultMiss).Inc()
		return false
	}

	metrics.CacheLookups.WithLabelValues(kind, cacheResultHit).Inc()
	return true
}

func (s *CachedSource) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		s.logger.Warn("Transit cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func stopsCacheKey(q repository.StopQuery) string {
	return fmt.Sprintf("transit:stops:%d:%s:%s:%d:%s",
		q.Mode.RouteType(),
		strconv.FormatFloat(q.Origin.Latitude, 'f', -1, 64),
		strconv.FormatFloat(q.Origin.Longitude, 'f', -1, 64),
		q.MaxResults,
		strconv.FormatFloat(q.MaxDistanceMeters, 'f', -1, 64),
	)
}

func routesCacheKey(stopID int64, mode domain.TransportMode) string {
	return fmt.Sprintf("transit:routes:%d:%d", stopID, mode.RouteType())
}
