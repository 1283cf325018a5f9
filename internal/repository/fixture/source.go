package fixture

import (
	"context"
	"fmt"
	"os"

	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/utils"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// file - on-disk layout of a fixture
type file struct {
	Stops  []stopRecord  `yaml:"stops"`
	Routes []routeRecord `yaml:"routes"`
}

type stopRecord struct {
	ID     int64   `yaml:"id"`
	Name   string  `yaml:"name"`
	Mode   string  `yaml:"mode"`
	Lat    float64 `yaml:"lat"`
	Lon    float64 `yaml:"lon"`
	Suburb string  `yaml:"suburb"`
}

type routeRecord struct {
	ID        int64   `yaml:"id"`
	Name      string  `yaml:"name"`
	Number    string  `yaml:"number"`
	Mode      string  `yaml:"mode"`
	Direction string  `yaml:"direction"`
	StopIDs   []int64 `yaml:"stop_ids"`
}

type servedRoute struct {
	route   domain.Route
	stopIDs map[int64]struct{}
}

// source serves stops and routes from a YAML file loaded once at startup.
// Credentials are accepted and ignored.
type source struct {
	stops  []domain.Stop
	routes []servedRoute
	logger *zap.Logger
}

// Load reads a fixture file and returns it as a TransitDataSource
func Load(path string, logger *zap.Logger) (repository.TransitDataSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	src, err := Parse(raw, logger)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return src, nil
}

// Parse builds a TransitDataSource from fixture YAML
func Parse(raw []byte, logger *zap.Logger) (repository.TransitDataSource, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	s := &source{
		stops:  make([]domain.Stop, 0, len(f.Stops)),
		routes: make([]servedRoute, 0, len(f.Routes)),
		logger: logger,
	}

	for i, rec := range f.Stops {
		mode, err := domain.ParseTransportMode(rec.Mode)
		if err != nil {
			return nil, fmt.Errorf("stop #%d (%d): %w", i, rec.ID, err)
		}
		suburb := rec.Suburb
		if suburb == "" {
			suburb = domain.UnknownSuburb
		}
		s.stops = append(s.stops, domain.Stop{
			ID:         rec.ID,
			Name:       rec.Name,
			Mode:       mode,
			Coordinate: domain.Coordinate{Latitude: rec.Lat, Longitude: rec.Lon},
			Suburb:     suburb,
		})
	}

	for i, rec := range f.Routes {
		mode, err := domain.ParseTransportMode(rec.Mode)
		if err != nil {
			return nil, fmt.Errorf("route #%d (%d): %w", i, rec.ID, err)
		}
		served := servedRoute{
			route: domain.Route{
				ID:        rec.ID,
				Name:      rec.Name,
				Number:    rec.Number,
				Mode:      mode,
				Direction: rec.Direction,
			}.Normalize(),
			stopIDs: make(map[int64]struct{}, len(rec.StopIDs)),
		}
		for _, id := range rec.StopIDs {
			served.stopIDs[id] = struct{}{}
		}
		s.routes = append(s.routes, served)
	}

	logger.Info("Transit fixture loaded",
		zap.Int("stops", len(s.stops)),
		zap.Int("routes", len(s.routes)))

	return s, nil
}

// FindStopsNear returns fixture stops of the requested mode within
// MaxDistanceMeters of the origin, in file order
func (s *source) FindStopsNear(
	ctx context.Context,
	q repository.StopQuery,
	_ domain.Credentials,
) ([]domain.Stop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stops := make([]domain.Stop, 0)
	for _, stop := range s.stops {
		if stop.Mode != q.Mode {
			continue
		}
		if q.MaxDistanceMeters > 0 && utils.DistanceMeters(q.Origin, stop.Coordinate) > q.MaxDistanceMeters {
			continue
		}
		stops = append(stops, stop)
	}

	s.logger.Debug("Fixture stops matched",
		zap.String("mode", q.Mode.String()),
		zap.Int("count", len(stops)))

	return stops, nil
}

// FindRoutesForStop returns fixture routes of the mode that list stopID
func (s *source) FindRoutesForStop(
	ctx context.Context,
	stopID int64,
	mode domain.TransportMode,
	_ domain.Credentials,
) ([]domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	routes := make([]domain.Route, 0)
	for _, r := range s.routes {
		if r.route.Mode != mode {
			continue
		}
		if _, ok := r.stopIDs[stopID]; ok {
			routes = append(routes, r.route)
		}
	}

	return routes, nil
}
