package domain

const (
	// UnknownSuburb is used when the API omits stop_suburb
	UnknownSuburb = "Unknown"
	// UnknownDirection is used when the API omits direction_name
	UnknownDirection = "Unknown"
)

// Stop - transit stop as returned by the transit API
type Stop struct {
	ID         int64         `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	Mode       TransportMode `json:"mode" yaml:"mode"`
	Coordinate Coordinate    `json:"coordinate" yaml:"coordinate"`
	Suburb     string        `json:"suburb" yaml:"suburb"`
}

// RankedStop - stop annotated with its distance from a query origin.
// Recomputed for every query, never stored.
type RankedStop struct {
	Stop
	DistanceMeters float64 `json:"distance_m"`
}

// Route - route serving a stop
type Route struct {
	ID        int64         `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	Number    string        `json:"number" yaml:"number"`
	Mode      TransportMode `json:"mode" yaml:"mode"`
	Direction string        `json:"direction" yaml:"direction"`
}

// Normalize fills absent number and direction fields
func (r Route) Normalize() Route {
	if r.Number == "" {
		r.Number = r.Name
	}
	if r.Direction == "" {
		r.Direction = UnknownDirection
	}
	return r
}

// Credentials - developer id and signing key for the transit API
type Credentials struct {
	UserID string
	APIKey string
}

// IsComplete reports whether both the developer id and key are set
func (c Credentials) IsComplete() bool {
	return c.UserID != "" && c.APIKey != ""
}
