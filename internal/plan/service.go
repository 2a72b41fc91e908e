package plan

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/internal/guidance"
	"github.com/disasternav/disasternav/internal/resources"
	"github.com/disasternav/disasternav/internal/routing"
)

// ServiceConfig holds dependencies for the plan service.
type ServiceConfig struct {
	Resources *resources.Service
	Routing   *routing.Service
	Guidance  *guidance.Service
	Logger    zerolog.Logger
}

// Service generates evacuation plans. The stages run strictly in order
// and a stage failure stops the pipeline; nothing later runs.
type Service struct {
	resources *resources.Service
	routing   *routing.Service
	guidance  *guidance.Service
	logger    zerolog.Logger
}

// NewService creates a new plan service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		resources: cfg.Resources,
		routing:   cfg.Routing,
		guidance:  cfg.Guidance,
		logger:    cfg.Logger,
	}
}

// Generate builds an evacuation plan: find resources, route to the
// nearest listed one, then write the safety advisory.
func (s *Service) Generate(ctx context.Context, req Request) (*Plan, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyInput
	}

	s.logger.Info().
		Str("disaster_type", req.DisasterType).
		Float64("lat", req.Lat).
		Float64("lon", req.Lon).
		Msg("generating evacuation plan")

	found, err := s.resources.FindNearby(ctx, resources.Query{
		Lat:          req.Lat,
		Lon:          req.Lon,
		RadiusMeters: req.RadiusMeters,
		Category:     req.Category,
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		s.logger.Warn().
			Float64("lat", req.Lat).
			Float64("lon", req.Lon).
			Msg("no emergency resources within search radius")
		return nil, ErrNoResources
	}

	// The first listed resource is the destination.
	destination := found[0]

	route, err := s.routing.PlanRoute(ctx,
		routing.Coordinate{Lat: req.Lat, Lon: req.Lon},
		routing.Coordinate{Lat: destination.Lat, Lon: destination.Lon},
		req.DisasterType,
	)
	if err != nil {
		return nil, err
	}

	advisory, err := s.guidance.GenerateAdvisory(ctx, guidance.Request{
		Description:  req.Description,
		DisasterType: req.DisasterType,
		Lat:          req.Lat,
		Lon:          req.Lon,
	})
	if err != nil {
		return nil, err
	}

	p := &Plan{
		ID:           uuid.NewString(),
		DisasterType: req.DisasterType,
		Origin:       routing.Coordinate{Lat: req.Lat, Lon: req.Lon},
		Destination:  destination,
		Resources:    found,
		Route:        route,
		Advisory:     advisory,
		GeneratedAt:  time.Now().UTC(),
	}

	s.logger.Info().
		Str("plan_id", p.ID).
		Str("destination", destination.Name).
		Int("resource_count", len(found)).
		Int("step_count", len(route.Steps)).
		Msg("evacuation plan generated")

	return p, nil
}
