// Package routing assembles driving evacuation routes: it fetches a raw
// route from the routing provider, annotates each step with simulated
// blockages for the active disaster type, and computes totals.
package routing

import (
	"context"
	"errors"
)

// Sentinel errors for routing operations.
var (
	// ErrServiceUnavailable indicates the routing service is down or the circuit breaker is open.
	ErrServiceUnavailable = errors.New("routing service unavailable")
	// ErrNoRouteFound indicates the service answered but no usable route exists between the given points.
	ErrNoRouteFound = errors.New("no route found between the given points")
	// ErrInvalidFormat indicates the service response is missing expected structure.
	ErrInvalidFormat = errors.New("route response has invalid format")
)

// Provider defines the interface for routing providers.
type Provider interface {
	// GetRoute retrieves a single driving route between two points.
	GetRoute(ctx context.Context, origin, destination Coordinate) (*RawRoute, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawStep is one instruction of a route leg as returned by the provider,
// before blockage annotation.
type RawStep struct {
	Instruction     string
	DistanceMeters  float64
	DurationSeconds float64
	RoadName        string
}

// RawRoute is the provider's route before annotation. The geometry stays
// encoded; decoding is left to the presentation layer.
type RawRoute struct {
	GeometryPolyline string // Encoded polyline (precision 5)
	DistanceMeters   float64
	DurationSeconds  float64
	Steps            []RawStep
}

// RouteStep is a single annotated instruction. Alternative is non-empty
// exactly when Blocked is true.
type RouteStep struct {
	Instruction     string  `json:"instruction"`
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
	RoadName        string  `json:"roadName"`
	Blocked         bool    `json:"blocked"`
	Alternative     string  `json:"alternative,omitempty"`
}

// RouteResult is the assembled route: totals, the still-encoded geometry,
// and the annotated steps in provider order.
type RouteResult struct {
	TotalDistanceMeters  float64     `json:"totalDistanceMeters"`
	TotalDurationSeconds float64     `json:"totalDurationSeconds"`
	GeometryPolyline     string      `json:"polyline"`
	Steps                []RouteStep `json:"steps"`
}

// AnnotateFunc marks each raw step against the blockage simulation for the
// given disaster type.
type AnnotateFunc func(steps []RawStep, disasterType string) []RouteStep

// Error provides detailed error information from the routing provider.
type Error struct {
	Provider string // Provider that generated the error
	Code     string // Error code from the provider
	Message  string // Human-readable error message
	Err      error  // Underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
