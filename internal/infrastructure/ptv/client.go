package ptv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhlee0214/wakemeup/internal/config"
	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
	"github.com/jhlee0214/wakemeup/internal/pkg/errors"
	"github.com/jhlee0214/wakemeup/internal/pkg/metrics"
	"go.uber.org/zap"
)

const (
	opFindStopsNear     = "FindStopsNear"
	opFindRoutesForStop = "FindRoutesForStop"

	maxErrorBodyBytes = 4 << 10
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewPTVClient создает клиент PTV Timetable API v3 с подписью запросов
func NewPTVClient(cfg *config.TransitConfig, logger *zap.Logger) repository.TransitDataSource {
	return NewPTVClientWithHTTPClient(cfg, &http.Client{Timeout: cfg.RequestTimeout}, logger)
}

// NewPTVClientWithHTTPClient uses httpClient as is, including its transport and timeout
func NewPTVClientWithHTTPClient(cfg *config.TransitConfig, httpClient *http.Client, logger *zap.Logger) repository.TransitDataSource {
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

type stopsResponse struct {
	Stops []stopPayload `json:"stops"`
}

type stopPayload struct {
	StopID        int64   `json:"stop_id"`
	StopName      string  `json:"stop_name"`
	StopLatitude  float64 `json:"stop_latitude"`
	StopLongitude float64 `json:"stop_longitude"`
	StopSuburb    string  `json:"stop_suburb"`
}

type routesResponse struct {
	Routes []routePayload `json:"routes"`
}

type routePayload struct {
	RouteID       int64  `json:"route_id"`
	RouteName     string `json:"route_name"`
	RouteNumber   string `json:"route_number"`
	DirectionName string `json:"direction_name"`
}

// FindStopsNear возвращает остановки рядом с точкой.
// Ответ без поля stops считается пустым результатом, а не ошибкой.
func (c *client) FindStopsNear(
	ctx context.Context,
	q repository.StopQuery,
	creds domain.Credentials,
) ([]domain.Stop, error) {
	if !creds.IsComplete() {
		return nil, errors.ErrMissingCredentials
	}

	req, err := buildStopsRequest(q, creds)
	if err != nil {
		return nil, err
	}

	var payload stopsResponse
	if err := c.get(ctx, opFindStopsNear, req, &payload); err != nil {
		return nil, err
	}

	stops := make([]domain.Stop, 0, len(payload.Stops))
	for _, s := range payload.Stops {
		suburb := s.StopSuburb
		if suburb == "" {
			suburb = domain.UnknownSuburb
		}
		stops = append(stops, domain.Stop{
			ID:   s.StopID,
			Name: s.StopName,
			Mode: q.Mode,
			Coordinate: domain.Coordinate{
				Latitude:  s.StopLatitude,
				Longitude: s.StopLongitude,
			},
			Suburb: suburb,
		})
	}

	c.logger.Debug("PTV stops fetched",
		zap.String("mode", q.Mode.String()),
		zap.Int("count", len(stops)))

	return stops, nil
}

// FindRoutesForStop возвращает маршруты для остановки
func (c *client) FindRoutesForStop(
	ctx context.Context,
	stopID int64,
	mode domain.TransportMode,
	creds domain.Credentials,
) ([]domain.Route, error) {
	if !creds.IsComplete() {
		return nil, errors.ErrMissingCredentials
	}

	req, err := buildRoutesRequest(stopID, mode, creds)
	if err != nil {
		return nil, err
	}

	var payload routesResponse
	if err := c.get(ctx, opFindRoutesForStop, req, &payload); err != nil {
		return nil, err
	}

	routes := make([]domain.Route, 0, len(payload.Routes))
	for _, r := range payload.Routes {
		routes = append(routes, domain.Route{
			ID:        r.RouteID,
			Name:      r.RouteName,
			Number:    r.RouteNumber,
			Mode:      mode,
			Direction: r.DirectionName,
		}.Normalize())
	}

	c.logger.Debug("PTV routes fetched",
		zap.Int64("stop_id", stopID),
		zap.Int("count", len(routes)))

	return routes, nil
}

// get issues a signed GET and decodes the JSON body into out
func (c *client) get(ctx context.Context, op string, sr domain.SignedRequest, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.TransitAPIRequests.WithLabelValues(op, outcome).Inc()
		metrics.TransitAPIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	// the signature is a credential of its own; log only the unsigned path
	c.logger.Debug("Calling PTV API",
		zap.String("operation", op),
		zap.String("path", sr.PathWithQuery()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sr.URL(c.baseURL), nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("operation", op), zap.Error(err))
		return errors.NewTransitAPIError(op, 0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("operation", op), zap.Error(err))
		return errors.NewTransitTransportError(op, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Error("PTV API returned error",
			zap.String("operation", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return errors.NewTransitAPIError(op, resp.StatusCode, fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("operation", op), zap.Error(err))
		return errors.NewTransitAPIError(op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}
