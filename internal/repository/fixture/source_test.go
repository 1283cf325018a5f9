package fixture

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
)

var highpoint = domain.Coordinate{Latitude: -37.771221, Longitude: 144.888086}

func loadTestFixture(t *testing.T) repository.TransitDataSource {
	t.Helper()
	src, err := Load(filepath.Join("testdata", "maribyrnong.yaml"), zap.NewNop())
	require.NoError(t, err)
	return src
}

func stopIDs(stops []domain.Stop) []int64 {
	ids := make([]int64, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestSource_FindStopsNear(t *testing.T) {
	src := loadTestFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    repository.StopQuery
		expected []int64
	}{
		{
			name:     "all tram stops within 2 km",
			query:    repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeTram, MaxResults: 20, MaxDistanceMeters: 2000},
			expected: []int64{2500, 2501, 2502},
		},
		{
			name:     "radius excludes the far stop",
			query:    repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeTram, MaxResults: 20, MaxDistanceMeters: 500},
			expected: []int64{2500, 2501},
		},
		{
			name:     "mode filter",
			query:    repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeBus, MaxResults: 20, MaxDistanceMeters: 2000},
			expected: []int64{47001},
		},
		{
			name:     "nothing in range",
			query:    repository.StopQuery{Origin: highpoint, Mode: domain.TransportModeTrain, MaxResults: 20, MaxDistanceMeters: 2000},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops, err := src.FindStopsNear(ctx, tt.query, domain.Credentials{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stopIDs(stops))
		})
	}
}

func TestSource_StopFields(t *testing.T) {
	src := loadTestFixture(t)

	stops, err := src.FindStopsNear(context.Background(), repository.StopQuery{
		Origin:            highpoint,
		Mode:              domain.TransportModeTram,
		MaxDistanceMeters: 300,
	}, domain.Credentials{})
	require.NoError(t, err)
	require.Len(t, stops, 2)

	assert.Equal(t, "Highpoint SC/Rosamond Rd", stops[0].Name)
	assert.Equal(t, domain.TransportModeTram, stops[0].Mode)
	assert.Equal(t, "Maribyrnong", stops[0].Suburb)
	// missing suburb in the file
	assert.Equal(t, domain.UnknownSuburb, stops[1].Suburb)
}

func TestSource_FindRoutesForStop(t *testing.T) {
	src := loadTestFixture(t)
	ctx := context.Background()

	routes, err := src.FindRoutesForStop(ctx, 2501, domain.TransportModeTram, domain.Credentials{})
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "57", routes[0].Number)
	assert.Equal(t, "Flinders Street Station", routes[0].Direction)

	routes, err = src.FindRoutesForStop(ctx, 47001, domain.TransportModeBus, domain.Credentials{})
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "Highpoint - Footscray", routes[0].Number)
	assert.Equal(t, domain.UnknownDirection, routes[0].Direction)

	// wrong mode for the stop
	routes, err = src.FindRoutesForStop(ctx, 47001, domain.TransportModeTram, domain.Credentials{})
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestSource_CancelledContext(t *testing.T) {
	src := loadTestFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FindStopsNear(ctx, repository.StopQuery{Origin: highpoint}, domain.Credentials{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = src.FindRoutesForStop(ctx, 2500, domain.TransportModeTram, domain.Credentials{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("stops: [\n"), zap.NewNop())
	assert.Error(t, err)

	_, err = Parse([]byte("stops:\n  - id: 1\n    mode: ferry\n"), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ferry")

	_, err = Load(filepath.Join("testdata", "missing.yaml"), zap.NewNop())
	assert.Error(t, err)
}
