package usecase

import (
	"context"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteUseCase lists routes serving a stop
type RouteUseCase struct {
	source repository.TransitDataSource
	creds  domain.Credentials
	logger *zap.Logger
}

func NewRouteUseCase(
	source repository.TransitDataSource,
	cfg *config.TransitConfig,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		source: source,
		creds:  domain.Credentials{UserID: cfg.UserID, APIKey: cfg.APIKey},
		logger: logger,
	}
}

// FindRoutes returns the routes of mode serving stopID with number and
// direction filled in. No routes is an empty list, not an error.
func (uc *RouteUseCase) FindRoutes(
	ctx context.Context,
	stopID int64,
	mode domain.TransportMode,
	creds domain.Credentials,
) ([]domain.Route, error) {
	if stopID <= 0 {
		return nil, errors.ErrInvalidStopID
	}
	if !mode.IsKnown() {
		return nil, errors.ErrInvalidTransportMode
	}

	routes, err := uc.source.FindRoutesForStop(ctx, stopID, mode, creds)
	if err != nil {
		uc.logger.Error("Failed to find routes for stop",
			zap.Int64("stop_id", stopID),
			zap.String("mode", mode.String()),
			zap.Error(err))
		return nil, err
	}

	normalized := make([]domain.Route, 0, len(routes))
	for _, r := range routes {
		normalized = append(normalized, r.Normalize())
	}

	return normalized, nil
}

// GetStopRoutes - маршруты остановки для HTTP
func (uc *RouteUseCase) GetStopRoutes(
	ctx context.Context,
	req dto.StopRoutesRequest,
) (*dto.StopRoutesResponse, error) {
	mode, err := parseSelectableMode(req.Mode)
	if err != nil {
		return nil, err
	}

	routes, err := uc.FindRoutes(ctx, req.StopID, mode, uc.creds)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RouteInfo, 0, len(routes))
	for _, r := range routes {
		result = append(result, dto.ConvertRoute(r))
	}

	return &dto.StopRoutesResponse{
		StopID: req.StopID,
		Mode:   mode.String(),
		Routes: result,
	}, nil
}
