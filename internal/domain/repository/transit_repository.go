package repository

import (
	"context"

	"github.com/jhlee0214/wakemeup/internal/domain"
)

// StopQuery - parameters of a nearby stop lookup
type StopQuery struct {
	Origin            domain.Coordinate
	Mode              domain.TransportMode
	MaxResults        int
	MaxDistanceMeters float64
}

// TransitDataSource определяет источник данных о транспорте.
// Реализации: подписанный HTTP клиент PTV и fixture-источник для тестов/демо.
type TransitDataSource interface {
	// FindStopsNear возвращает остановки рядом с точкой в порядке ответа API
	FindStopsNear(ctx context.Context, q StopQuery, creds domain.Credentials) ([]domain.Stop, error)

	// FindRoutesForStop возвращает маршруты, обслуживающие остановку
	FindRoutesForStop(ctx context.Context, stopID int64, mode domain.TransportMode, creds domain.Credentials) ([]domain.Route, error)
}
