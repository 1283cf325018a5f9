package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlarmPlan - wake/leave alarm derived from an estimated departure
type AlarmPlan struct {
	ID            uuid.UUID `json:"id"`
	AlarmTime     time.Time `json:"alarm_time"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	LeadMinutes   int       `json:"lead_minutes"`
	TravelMinutes int       `json:"travel_minutes"`
}
