package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhlee0214/wakemeup/internal/domain"
)

// NearbyStopsResponse - ответ на поиск ближайших остановок, по возрастанию расстояния
type NearbyStopsResponse struct {
	Origin      domain.Coordinate   `json:"origin"`
	Mode        string              `json:"mode"`
	MaxResults  int                 `json:"max_results"`
	MaxDistance float64             `json:"max_distance"`
	Stops       []domain.NearbyStop `json:"stops"`
}

// StopRoutesResponse - маршруты остановки
type StopRoutesResponse struct {
	StopID int64       `json:"stop_id"`
	Mode   string      `json:"mode"`
	Routes []RouteInfo `json:"routes"`
}

// RouteInfo - маршрут в ответе API
type RouteInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Number    string `json:"number"`
	Mode      string `json:"mode"`
	Direction string `json:"direction"`
}

// AlarmPlanResponse - рассчитанный план будильника
type AlarmPlanResponse struct {
	ID            uuid.UUID `json:"id"`
	AlarmTime     time.Time `json:"alarm_time"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	LeadMinutes   int       `json:"lead_minutes"`
	TravelMinutes int       `json:"travel_minutes"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status        string `json:"status"`
	TransitSource string `json:"transit_source"`
	Cache         string `json:"cache"`
}

// ConvertRoute converts a domain route for the API
func ConvertRoute(r domain.Route) RouteInfo {
	return RouteInfo{
		ID:        r.ID,
		Name:      r.Name,
		Number:    r.Number,
		Mode:      r.Mode.String(),
		Direction: r.Direction,
	}
}

// ConvertAlarmPlan converts a domain alarm plan for the API
func ConvertAlarmPlan(p *domain.AlarmPlan) *AlarmPlanResponse {
	return &AlarmPlanResponse{
		ID:            p.ID,
		AlarmTime:     p.AlarmTime,
		DepartureTime: p.DepartureTime,
		ArrivalTime:   p.ArrivalTime,
		LeadMinutes:   p.LeadMinutes,
		TravelMinutes: p.TravelMinutes,
	}
}
