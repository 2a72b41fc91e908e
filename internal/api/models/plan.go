package models

import (
	"fmt"

	"github.com/disasternav/disasternav/internal/guidance"
	"github.com/disasternav/disasternav/internal/plan"
	"github.com/disasternav/disasternav/internal/resources"
	"github.com/disasternav/disasternav/internal/routing"
	"github.com/disasternav/disasternav/pkg/polyline"
)

// PlanRequest is the body for POST /v1/plans:generate.
type PlanRequest struct {
	// Description is the free-text emergency situation.
	Description string `json:"description" validate:"required"`

	// DisasterType classifies the emergency. Defaults to Other when blank.
	DisasterType DisasterType `json:"disasterType"`

	// Origin is the caller's location.
	Origin *Point `json:"origin" validate:"required"`

	// RadiusMeters bounds the resource search (0 means the default 5000).
	RadiusMeters int `json:"radiusMeters,omitempty"`

	// Category selects the resource kind (blank means assembly_point).
	Category string `json:"category,omitempty"`
}

// RoutePreviewRequest is the body for POST /v1/routes:preview.
type RoutePreviewRequest struct {
	Origin       *Point       `json:"origin" validate:"required"`
	Destination  *Point       `json:"destination" validate:"required"`
	DisasterType DisasterType `json:"disasterType"`
}

// RouteStep is one annotated instruction, carrying both raw numbers and
// the display strings the UI renders.
type RouteStep struct {
	Instruction     string  `json:"instruction"`
	RoadName        string  `json:"roadName"`
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
	Distance        string  `json:"distance"`
	Duration        string  `json:"duration"`
	Blocked         bool    `json:"blocked"`
	Alternative     string  `json:"alternative,omitempty"`
}

// Route is an assembled evacuation route. Geometry holds the decoded
// polyline as [lat, lon] pairs ready for map rendering; Polyline keeps
// the encoded form.
type Route struct {
	TotalDistanceMeters  float64      `json:"totalDistanceMeters"`
	TotalDurationSeconds float64      `json:"totalDurationSeconds"`
	TotalDistance        string       `json:"totalDistance"`
	TotalDuration        string       `json:"totalDuration"`
	Polyline             string       `json:"polyline"`
	Geometry             [][2]float64 `json:"geometry"`
	Steps                []RouteStep  `json:"steps"`
}

// Resource is an emergency resource found near the caller.
type Resource struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Point          Point             `json:"point"`
	DistanceMeters float64           `json:"distanceMeters"`
	Tags           map[string]string `json:"tags,omitempty"`
}

// ResourceList is the response for GET /v1/resources.
type ResourceList struct {
	Items []Resource `json:"items"`
}

// Advisory is the generated safety briefing.
type Advisory struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// PlanResponse is the evacuation plan payload.
type PlanResponse struct {
	ID           string       `json:"id"`
	DisasterType DisasterType `json:"disasterType"`
	Origin       Point        `json:"origin"`
	Destination  Resource     `json:"destination"`
	Resources    []Resource   `json:"resources"`
	Route        Route        `json:"route"`
	Advisory     Advisory     `json:"advisory"`
	GeneratedAt  Timestamp    `json:"generatedAt"`
}

// RoutePreviewResponse is the response for POST /v1/routes:preview.
type RoutePreviewResponse struct {
	DisasterType DisasterType `json:"disasterType"`
	Route        Route        `json:"route"`
}

// NewPlanResponse maps a generated plan onto the API shape.
func NewPlanResponse(p *plan.Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		DisasterType: DisasterType(p.DisasterType),
		Origin:       Point{Lat: p.Origin.Lat, Lon: p.Origin.Lon},
		Destination:  NewResource(p.Destination),
		Resources:    NewResources(p.Resources),
		Route:        NewRoute(p.Route),
		Advisory:     NewAdvisory(p.Advisory),
		GeneratedAt:  Timestamp(p.GeneratedAt),
	}
}

// NewRoute maps a route result onto the API shape, decoding the geometry
// for map rendering.
func NewRoute(r *routing.RouteResult) Route {
	steps := make([]RouteStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, NewRouteStep(s))
	}

	return Route{
		TotalDistanceMeters:  r.TotalDistanceMeters,
		TotalDurationSeconds: r.TotalDurationSeconds,
		TotalDistance:        FormatDistance(r.TotalDistanceMeters),
		TotalDuration:        FormatDuration(r.TotalDurationSeconds),
		Polyline:             r.GeometryPolyline,
		Geometry:             DecodeGeometry(r.GeometryPolyline),
		Steps:                steps,
	}
}

// NewRouteStep maps one annotated step onto the API shape.
func NewRouteStep(s routing.RouteStep) RouteStep {
	return RouteStep{
		Instruction:     s.Instruction,
		RoadName:        s.RoadName,
		DistanceMeters:  s.DistanceMeters,
		DurationSeconds: s.DurationSeconds,
		Distance:        FormatDistance(s.DistanceMeters),
		Duration:        FormatDuration(s.DurationSeconds),
		Blocked:         s.Blocked,
		Alternative:     s.Alternative,
	}
}

// NewResource maps one found resource onto the API shape.
func NewResource(r resources.Resource) Resource {
	return Resource{
		ID:             r.ID,
		Name:           r.Name,
		Point:          Point{Lat: r.Lat, Lon: r.Lon},
		DistanceMeters: r.DistanceMeters,
		Tags:           r.Tags,
	}
}

// NewResources maps a resource list onto the API shape. The result is
// never nil so the JSON renders as an array.
func NewResources(rs []resources.Resource) []Resource {
	out := make([]Resource, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewResource(r))
	}
	return out
}

// NewAdvisory maps a generated advisory onto the API shape.
func NewAdvisory(a *guidance.Advisory) Advisory {
	if a == nil {
		return Advisory{}
	}
	return Advisory{Text: a.Text, Model: a.Model}
}

// DecodeGeometry converts an encoded polyline into [lat, lon] pairs.
func DecodeGeometry(encoded string) [][2]float64 {
	coords := polyline.Decode(encoded)
	out := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		out = append(out, [2]float64{c.Lat, c.Lon})
	}
	return out
}

// FormatDistance renders meters as "x.x km" for display.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration renders seconds as "x.x min" for display.
func FormatDuration(seconds float64) string {
	return fmt.Sprintf("%.1f min", seconds/60)
}
