package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names shared with the mobile backend
const (
	StreamStopLookup     = "stream:stops:lookup"
	StreamStopLookupDone = "stream:stops:done"
)

// StopLookupEvent - incoming request for stops near a coordinate
type StopLookupEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	Lat         *float64  `json:"lat,omitempty"`
	Lon         *float64  `json:"lon,omitempty"`
	Mode        string    `json:"mode"`
	MaxResults  int       `json:"max_results,omitempty"`
	MaxDistance float64   `json:"max_distance,omitempty"`
}

// HasLocation reports whether both coordinates are present
func (e *StopLookupEvent) HasLocation() bool {
	return e.Lat != nil && e.Lon != nil
}

// StopLookupDoneEvent - lookup result published back to the stream
type StopLookupDoneEvent struct {
	RequestID   uuid.UUID    `json:"request_id"`
	Stops       []NearbyStop `json:"stops"`
	Error       string       `json:"error,omitempty"`
	ProcessedAt time.Time    `json:"processed_at"`
}

// NearbyStop - ranked stop as published to consumers
type NearbyStop struct {
	StopID         int64   `json:"stop_id"`
	Name           string  `json:"name"`
	Mode           string  `json:"mode"`
	Suburb         string  `json:"suburb"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	DistanceMeters float64 `json:"distance_m"`
	WalkingMinutes float64 `json:"walking_minutes"`
}

// StreamMessage - message read from a Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
