// Package plan orchestrates evacuation plan generation: resource lookup,
// route assembly, and safety advisory, in that order.
package plan

import (
	"errors"
	"time"

	"github.com/disasternav/disasternav/internal/guidance"
	"github.com/disasternav/disasternav/internal/resources"
	"github.com/disasternav/disasternav/internal/routing"
)

// Sentinel errors for plan generation.
var (
	// ErrEmptyInput indicates a blank emergency description.
	ErrEmptyInput = errors.New("emergency description is required")

	// ErrNoResources indicates the lookup succeeded but found nothing
	// within the search radius.
	ErrNoResources = errors.New("no emergency resources found nearby")
)

// Request describes an evacuation plan to generate.
type Request struct {
	// Description is the free-text emergency situation. Must not be blank.
	Description string

	// DisasterType drives road blockage simulation and the advisory.
	DisasterType string

	// Lat and Lon locate the person asking for help.
	Lat float64
	Lon float64

	// RadiusMeters bounds the resource search (0 means the default).
	RadiusMeters int

	// Category selects the resource kind (empty means the default).
	Category string
}

// Plan is a complete evacuation plan. Destination is always the first
// resource the lookup returned; Resources holds the full list for display.
type Plan struct {
	ID           string               `json:"id"`
	DisasterType string               `json:"disasterType"`
	Origin       routing.Coordinate   `json:"origin"`
	Destination  resources.Resource   `json:"destination"`
	Resources    []resources.Resource `json:"resources"`
	Route        *routing.RouteResult `json:"route"`
	Advisory     *guidance.Advisory   `json:"advisory"`
	GeneratedAt  time.Time            `json:"generatedAt"`
}
