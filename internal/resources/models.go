// Package resources finds nearby emergency resources, such as assembly
// points, through an Overpass-style lookup.
package resources

import (
	"context"
	"errors"
)

// ErrLookupFailed indicates the resource lookup could not be completed
// because of a transport, HTTP, or parse failure.
var ErrLookupFailed = errors.New("resource lookup failed")

const (
	// DefaultRadiusMeters is the search radius used when none is given.
	DefaultRadiusMeters = 5000

	// DefaultCategory is the emergency tag value searched by default.
	DefaultCategory = "assembly_point"

	// DefaultName is the display name for resources without a name tag.
	DefaultName = "Emergency Shelter"
)

// Resource is a single emergency resource.
type Resource struct {
	ID   int64             `json:"id"` // OSM node id
	Name string            `json:"name"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags,omitempty"`

	// DistanceMeters is the crow-flies distance from the query point,
	// filled in by the service for display. Resources keep provider
	// order; distance never reorders them.
	DistanceMeters float64 `json:"distanceMeters"`
}

// Query describes a nearby-resources lookup.
type Query struct {
	Lat          float64
	Lon          float64
	RadiusMeters int
	Category     string
}

// Provider defines the interface for resource lookup providers.
type Provider interface {
	// FindNearby returns the resources around the query point in the
	// order the provider lists them. An empty result is not an error.
	FindNearby(ctx context.Context, q Query) ([]Resource, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}
