package domain

import (
	"fmt"
	"strings"
)

// TransportMode - transport mode understood by the transit API
type TransportMode int

// Values match the PTV route type codes.
const (
	TransportModeTrain    TransportMode = 0
	TransportModeTram     TransportMode = 1
	TransportModeBus      TransportMode = 2
	TransportModeVLine    TransportMode = 3
	TransportModeNightBus TransportMode = 4
)

var transportModeNames = map[TransportMode]string{
	TransportModeTrain:    "train",
	TransportModeTram:     "tram",
	TransportModeBus:      "bus",
	TransportModeVLine:    "vline",
	TransportModeNightBus: "nightbus",
}

// RouteType returns the integer route type code used in API queries
func (m TransportMode) RouteType() int {
	return int(m)
}

func (m TransportMode) String() string {
	if name, ok := transportModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("route_type_%d", int(m))
}

// IsKnown reports whether m is one of the five route type codes.
func (m TransportMode) IsKnown() bool {
	_, ok := transportModeNames[m]
	return ok
}

// IsSelectable reports whether m can be requested by clients.
// VLine and NightBus codes are reserved but not offered yet.
func (m TransportMode) IsSelectable() bool {
	switch m {
	case TransportModeTrain, TransportModeTram, TransportModeBus:
		return true
	}
	return false
}

// MarshalText encodes the mode by name
func (m TransportMode) MarshalText() ([]byte, error) {
	if !m.IsKnown() {
		return nil, fmt.Errorf("unknown transport mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name
func (m *TransportMode) UnmarshalText(text []byte) error {
	mode, err := ParseTransportMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseTransportMode parses a mode name (case-insensitive)
func ParseTransportMode(s string) (TransportMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range transportModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown transport mode %q", s)
}

// SelectableTransportModes returns the modes offered to clients
func SelectableTransportModes() []TransportMode {
	return []TransportMode{TransportModeTrain, TransportModeTram, TransportModeBus}
}
