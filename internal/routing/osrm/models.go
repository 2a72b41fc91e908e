package osrm

// routeResponse represents the OSRM route service response envelope.
// OSRM signals errors through the code field, not only the HTTP status.
type routeResponse struct {
	Code      string      `json:"code"`
	Message   string      `json:"message,omitempty"`
	Routes    []osrmRoute `json:"routes"`
	Waypoints []waypoint  `json:"waypoints,omitempty"`
}

// waypoint is a snapped input coordinate.
type waypoint struct {
	Name     string    `json:"name,omitempty"`
	Location []float64 `json:"location,omitempty"` // [lon, lat]
	Distance float64   `json:"distance,omitempty"`
}

// osrmRoute represents a single route in the response.
type osrmRoute struct {
	Distance   float64    `json:"distance"` // meters
	Duration   float64    `json:"duration"` // seconds
	Geometry   string     `json:"geometry"` // encoded polyline (precision 5)
	Legs       []routeLeg `json:"legs"`
	Weight     float64    `json:"weight,omitempty"`
	WeightName string     `json:"weight_name,omitempty"`
}

// routeLeg represents the part of a route between two waypoints.
type routeLeg struct {
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"`
	Summary  string      `json:"summary,omitempty"`
	Steps    []routeStep `json:"steps,omitempty"`
}

// routeStep represents a single instruction segment of a leg.
type routeStep struct {
	Distance float64  `json:"distance"`
	Duration float64  `json:"duration"`
	Geometry string   `json:"geometry,omitempty"`
	Name     string   `json:"name"`
	Mode     string   `json:"mode,omitempty"`
	Maneuver maneuver `json:"maneuver"`
}

// maneuver describes the action at the start of a step. Stock OSRM emits
// only type/modifier/location; some deployments add a ready-made
// instruction string, which is preferred when present.
type maneuver struct {
	Type          string    `json:"type"`
	Modifier      string    `json:"modifier,omitempty"`
	Instruction   string    `json:"instruction,omitempty"`
	Location      []float64 `json:"location,omitempty"`
	BearingBefore int       `json:"bearing_before,omitempty"`
	BearingAfter  int       `json:"bearing_after,omitempty"`
}

// codeOk is the response code of a successful OSRM request.
const codeOk = "Ok"
