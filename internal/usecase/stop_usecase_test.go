package usecase_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/usecase"
	"github.com/jhlee0214/wakemeup/internal/usecase/dto"
)

var (
	highpoint = domain.Coordinate{Latitude: -37.771221, Longitude: 144.888086}
	testCreds = domain.Credentials{UserID: "3000123", APIKey: "secret-key"}
)

func testTransitConfig() *config.TransitConfig {
	return &config.TransitConfig{
		UserID:             testCreds.UserID,
		APIKey:             testCreds.APIKey,
		DefaultMaxResults:  20,
		DefaultMaxDistance: 2000,
	}
}

// stopNorthOf places a stop distanceMeters due north of origin
func stopNorthOf(origin domain.Coordinate, id int64, distanceMeters float64) domain.Stop {
	dLat := distanceMeters / (6371000.0 * math.Pi / 180)
	return domain.Stop{
		ID:   id,
		Name: "Stop",
		Mode: domain.TransportModeTram,
		Coordinate: domain.Coordinate{
			Latitude:  origin.Latitude + dLat,
			Longitude: origin.Longitude,
		},
		Suburb: domain.UnknownSuburb,
	}
}

func rankedIDs(stops []domain.RankedStop) []int64 {
	ids := make([]int64, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestStopUseCase_FindNearby(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("orders stops by distance", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		// API order is not distance order
		stops := []domain.Stop{
			{ID: 200, Mode: domain.TransportModeTram, Coordinate: domain.Coordinate{Latitude: -37.76942235678816, Longitude: 144.888086}},
			{ID: 50, Mode: domain.TransportModeTram, Coordinate: domain.Coordinate{Latitude: -37.77077133919704, Longitude: 144.888086}},
			{ID: 700, Mode: domain.TransportModeTram, Coordinate: domain.Coordinate{Latitude: -37.764925748758564, Longitude: 144.888086}},
		}
		query := repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeTram, MaxResults: 10, MaxDistanceMeters: 1000}
		source.On("FindStopsNear", mock.Anything, query, testCreds).Return(stops, nil)

		ranked, err := uc.FindNearby(ctx, highpoint, domain.TransportModeTram, 10, 1000, testCreds)

		require.NoError(t, err)
		assert.Equal(t, []int64{50, 200, 700}, rankedIDs(ranked))
		assert.InDelta(t, 50, ranked[0].DistanceMeters, 0.5)
		assert.InDelta(t, 200, ranked[1].DistanceMeters, 0.5)
		assert.InDelta(t, 700, ranked[2].DistanceMeters, 0.5)

		source.AssertExpectations(t)
	})

	t.Run("shuffled input is sorted and ties keep source order", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		var stops []domain.Stop
		for i := int64(1); i <= 30; i++ {
			stops = append(stops, stopNorthOf(highpoint, i, float64(i*37%500)))
		}
		rng := rand.New(rand.NewSource(7))
		rng.Shuffle(len(stops), func(i, j int) { stops[i], stops[j] = stops[j], stops[i] })

		// two stops at the same spot
		tieA := stopNorthOf(highpoint, 1001, 123)
		tieB := stopNorthOf(highpoint, 1002, 123)
		stops = append(stops, tieA, tieB)

		source.On("FindStopsNear", mock.Anything, mock.Anything, testCreds).Return(stops, nil)

		ranked, err := uc.FindNearby(ctx, highpoint, domain.TransportModeTram, 100, 2000, testCreds)
		require.NoError(t, err)
		require.Len(t, ranked, len(stops))

		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i-1].DistanceMeters, ranked[i].DistanceMeters)
		}

		posA, posB := -1, -1
		for i, r := range ranked {
			switch r.ID {
			case 1001:
				posA = i
			case 1002:
				posB = i
			}
		}
		assert.Equal(t, posA+1, posB)
	})

	t.Run("truncates to max results", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		stops := []domain.Stop{
			stopNorthOf(highpoint, 3, 300),
			stopNorthOf(highpoint, 1, 100),
			stopNorthOf(highpoint, 4, 400),
			stopNorthOf(highpoint, 2, 200),
		}
		source.On("FindStopsNear", mock.Anything, mock.Anything, testCreds).Return(stops, nil)

		ranked, err := uc.FindNearby(ctx, highpoint, domain.TransportModeTram, 2, 2000, testCreds)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, rankedIDs(ranked))
	})

	t.Run("no stops is an empty list", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		source.On("FindStopsNear", mock.Anything, mock.Anything, testCreds).Return([]domain.Stop{}, nil)

		ranked, err := uc.FindNearby(ctx, highpoint, domain.TransportModeBus, 20, 2000, testCreds)
		require.NoError(t, err)
		assert.NotNil(t, ranked)
		assert.Empty(t, ranked)
	})

	t.Run("invalid coordinates never reach the source", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		invalid := []domain.Coordinate{
			{Latitude: 91, Longitude: 144.9},
			{Latitude: -37.8, Longitude: -200},
			{Latitude: math.NaN(), Longitude: 144.9},
			{Latitude: -37.8, Longitude: math.Inf(1)},
		}
		for _, origin := range invalid {
			ranked, err := uc.FindNearby(ctx, origin, domain.TransportModeTram, 20, 2000, testCreds)
			assert.Nil(t, ranked)
			assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
		}

		source.AssertNotCalled(t, "FindStopsNear", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("source error is propagated", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		apiErr := errors.NewTransitAPIError("FindStopsNear", 403, assert.AnError)
		source.On("FindStopsNear", mock.Anything, mock.Anything, testCreds).Return(nil, apiErr)

		ranked, err := uc.FindNearby(ctx, highpoint, domain.TransportModeTram, 20, 2000, testCreds)
		assert.Nil(t, ranked)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("invalid limits", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		_, err := uc.FindNearby(ctx, highpoint, domain.TransportModeTram, 0, 2000, testCreds)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)

		_, err = uc.FindNearby(ctx, highpoint, domain.TransportModeTram, 5, -1, testCreds)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)

		_, err = uc.FindNearby(ctx, highpoint, domain.TransportMode(9), 5, 100, testCreds)
		assert.ErrorIs(t, err, errors.ErrInvalidTransportMode)

		source.AssertNotCalled(t, "FindStopsNear", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStopUseCase_GetNearbyStops(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	lat, lon := highpoint.Latitude, highpoint.Longitude

	t.Run("applies defaults and configured credentials", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		expected := repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeTram, MaxResults: 20, MaxDistanceMeters: 2000}
		source.On("FindStopsNear", mock.Anything, expected, testCreds).
			Return([]domain.Stop{stopNorthOf(highpoint, 2500, 139)}, nil)

		resp, err := uc.GetNearbyStops(ctx, dto.NearbyStopsRequest{Lat: &lat, Lon: &lon, Mode: "Tram"})

		require.NoError(t, err)
		assert.Equal(t, "tram", resp.Mode)
		assert.Equal(t, 20, resp.MaxResults)
		assert.Equal(t, 2000.0, resp.MaxDistance)
		require.Len(t, resp.Stops, 1)
		assert.Equal(t, int64(2500), resp.Stops[0].StopID)
		assert.Equal(t, "tram", resp.Stops[0].Mode)
		assert.InDelta(t, 139, resp.Stops[0].DistanceMeters, 0.5)
		assert.Equal(t, 2.0, resp.Stops[0].WalkingMinutes)

		source.AssertExpectations(t)
	})

	t.Run("explicit limits", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		expected := repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeBus, MaxResults: 3, MaxDistanceMeters: 500}
		source.On("FindStopsNear", mock.Anything, expected, testCreds).Return([]domain.Stop{}, nil)

		resp, err := uc.GetNearbyStops(ctx, dto.NearbyStopsRequest{Lat: &lat, Lon: &lon, Mode: "bus", MaxResults: 3, MaxDistance: 500})

		require.NoError(t, err)
		assert.Empty(t, resp.Stops)
		source.AssertExpectations(t)
	})

	t.Run("reserved modes are rejected", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		for _, mode := range []string{"vline", "nightbus", "ferry", ""} {
			_, err := uc.GetNearbyStops(ctx, dto.NearbyStopsRequest{Lat: &lat, Lon: &lon, Mode: mode})
			assert.ErrorIs(t, err, errors.ErrInvalidTransportMode, mode)
		}
		source.AssertNotCalled(t, "FindStopsNear", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		source := &MockTransitDataSource{}
		uc := usecase.NewStopUseCase(source, testTransitConfig(), logger)

		_, err := uc.GetNearbyStops(ctx, dto.NearbyStopsRequest{Lat: &lat, Mode: "tram"})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}
