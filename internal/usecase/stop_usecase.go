package usecase

import (
	"context"
	"sort"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/pkg/utils"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"go.uber.org/zap"
)

// StopUseCase ranks stops returned by the transit data source by distance
type StopUseCase struct {
	source             repository.TransitDataSource
	creds              domain.Credentials
	defaultMaxResults  int
	defaultMaxDistance float64
	logger             *zap.Logger
}

func NewStopUseCase(
	source repository.TransitDataSource,
	cfg *config.TransitConfig,
	logger *zap.Logger,
) *StopUseCase {
	return &StopUseCase{
		source:             source,
		creds:              domain.Credentials{UserID: cfg.UserID, APIKey: cfg.APIKey},
		defaultMaxResults:  cfg.DefaultMaxResults,
		defaultMaxDistance: cfg.DefaultMaxDistance,
		logger:             logger,
	}
}

// FindNearby returns up to maxResults stops of mode, nearest first.
// An invalid origin is rejected before any upstream call.
// Stops at equal distance keep the order the source returned them in.
func (uc *StopUseCase) FindNearby(
	ctx context.Context,
	origin domain.Coordinate,
	mode domain.TransportMode,
	maxResults int,
	maxDistanceMeters float64,
	creds domain.Credentials,
) ([]domain.RankedStop, error) {
	if !origin.IsValid() {
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": origin.Latitude,
			"lon": origin.Longitude,
		})
	}
	if !mode.IsKnown() {
		return nil, errors.ErrInvalidTransportMode
	}
	if maxResults < 1 || !(maxDistanceMeters > 0) {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"max_results":  maxResults,
			"max_distance": maxDistanceMeters,
		})
	}

	stops, err := uc.source.FindStopsNear(ctx, repository.StopQuery{
		Origin:            origin,
		Mode:              mode,
		MaxResults:        maxResults,
		MaxDistanceMeters: maxDistanceMeters,
	}, creds)
	if err != nil {
		uc.logger.Error("Failed to find stops near origin",
			zap.Float64("lat", origin.Latitude),
			zap.Float64("lon", origin.Longitude),
			zap.String("mode", mode.String()),
			zap.Error(err))
		return nil, err
	}

	ranked := make([]domain.RankedStop, 0, len(stops))
	for _, stop := range stops {
		ranked = append(ranked, domain.RankedStop{
			Stop:           stop,
			DistanceMeters: utils.DistanceMeters(origin, stop.Coordinate),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	return ranked, nil
}

// GetNearbyStops - поиск ближайших остановок для HTTP и воркера.
// Подставляет значения по умолчанию и учётные данные из конфигурации.
func (uc *StopUseCase) GetNearbyStops(
	ctx context.Context,
	req dto.NearbyStopsRequest,
) (*dto.NearbyStopsResponse, error) {
	if req.Lat == nil || req.Lon == nil {
		return nil, errors.ErrInvalidCoordinates
	}

	mode, err := parseSelectableMode(req.Mode)
	if err != nil {
		return nil, err
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = uc.defaultMaxResults
	}
	maxDistance := req.MaxDistance
	if maxDistance == 0 {
		maxDistance = uc.defaultMaxDistance
	}

	origin := domain.Coordinate{Latitude: *req.Lat, Longitude: *req.Lon}
	ranked, err := uc.FindNearby(ctx, origin, mode, maxResults, maxDistance, uc.creds)
	if err != nil {
		return nil, err
	}

	stops := make([]domain.NearbyStop, 0, len(ranked))
	for _, rs := range ranked {
		stops = append(stops, toNearbyStop(rs))
	}

	uc.logger.Debug("Nearby stops ranked",
		zap.String("mode", mode.String()),
		zap.Int("count", len(stops)))

	return &dto.NearbyStopsResponse{
		Origin:      origin,
		Mode:        mode.String(),
		MaxResults:  maxResults,
		MaxDistance: maxDistance,
		Stops:       stops,
	}, nil
}

func toNearbyStop(rs domain.RankedStop) domain.NearbyStop {
	return domain.NearbyStop{
		StopID:         rs.ID,
		Name:           rs.Name,
		Mode:           rs.Mode.String(),
		Suburb:         rs.Suburb,
		Lat:            rs.Coordinate.Latitude,
		Lon:            rs.Coordinate.Longitude,
		DistanceMeters: rs.DistanceMeters,
		WalkingMinutes: utils.WalkingMinutes(rs.DistanceMeters),
	}
}

// parseSelectableMode accepts the modes offered to clients (train, tram, bus)
func parseSelectableMode(s string) (domain.TransportMode, error) {
	mode, err := domain.ParseTransportMode(s)
	if err != nil || !mode.IsSelectable() {
		return 0, errors.ErrInvalidTransportMode.WithDetails(map[string]interface{}{
			"mode": s,
		})
	}
	return mode, nil
}
