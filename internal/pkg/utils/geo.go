package utils

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/jhlee0214/wakemeup/internal/domain"
)

// EarthRadiusMeters - mean Earth radius used for all distances
const EarthRadiusMeters = 6371000.0

// DistanceMeters вычисляет расстояние по большому кругу (haversine) в метрах.
// NaN на входе даёт NaN на выходе; координаты валидирует вызывающий.
func DistanceMeters(a, b domain.Coordinate) float64 {
	from := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	to := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return from.Distance(to).Radians() * EarthRadiusMeters
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return domain.Coordinate{Latitude: lat, Longitude: lon}.IsValid()
}

// WalkingMinutes estimates walking time for a straight-line distance
func WalkingMinutes(distanceMeters float64) float64 {
	const (
		walkingSpeedMps = 1.39 // ~5 km/h
		detourFactor    = 1.2
	)
	minutes := distanceMeters * detourFactor / walkingSpeedMps / 60
	return math.Round(minutes*10) / 10
}
