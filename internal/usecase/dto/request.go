package dto

import "time"

// NearbyStopsRequest - запрос на поиск ближайших остановок.
// Диапазон координат проверяет use case, чтобы ответ был INVALID_COORDINATES.
type NearbyStopsRequest struct {
	Lat         *float64 `json:"lat" validate:"required" example:"-37.771221"`
	Lon         *float64 `json:"lon" validate:"required" example:"144.888086"`
	Mode        string   `json:"mode" validate:"required,transport_mode" example:"tram"`
	MaxResults  int      `json:"max_results,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
	MaxDistance float64  `json:"max_distance,omitempty" validate:"omitempty,gt=0,max=10000" example:"2000"` // meters
}

// StopRoutesRequest - запрос маршрутов, проходящих через остановку
type StopRoutesRequest struct {
	StopID int64  `json:"stop_id" validate:"required,gt=0"`
	Mode   string `json:"mode" validate:"required,transport_mode"`
}

// AlarmPlanRequest - запрос на расчёт времени будильника.
// Пропущенные buffer/travel берутся из конфигурации.
type AlarmPlanRequest struct {
	DepartureTime time.Time `json:"departure_time" validate:"required" example:"2026-03-02T08:15:00+11:00"`
	BufferMinutes *int      `json:"buffer_minutes,omitempty" validate:"omitempty,min=0,max=180" example:"10"`
	TravelMinutes *int      `json:"travel_minutes,omitempty" validate:"omitempty,min=0,max=600" example:"25"`
}
