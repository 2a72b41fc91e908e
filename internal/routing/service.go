package routing

import (
	"context"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the route assembly service.
type ServiceConfig struct {
	// Provider is the routing data provider.
	Provider Provider

	// Annotate marks steps against the blockage simulation.
	Annotate AnnotateFunc

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service assembles annotated evacuation routes. Every call is a single
// provider round-trip: results are not cached and failures are not retried.
type Service struct {
	provider Provider
	annotate AnnotateFunc
	logger   zerolog.Logger
}

// NewService creates a new route assembly service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		annotate: cfg.Annotate,
		logger:   cfg.Logger,
	}
}

// PlanRoute fetches a driving route from the provider and annotates every
// step against the blockage simulation for the given disaster type. The
// route geometry stays polyline-encoded in the result. When the provider
// reports an error the annotator is never invoked.
func (s *Service) PlanRoute(ctx context.Context, origin, destination Coordinate, disasterType string) (*RouteResult, error) {
	s.logger.Debug().
		Float64("origin_lat", origin.Lat).
		Float64("origin_lon", origin.Lon).
		Float64("dest_lat", destination.Lat).
		Float64("dest_lon", destination.Lon).
		Str("disaster_type", disasterType).
		Str("provider", s.provider.Name()).
		Msg("fetching route from provider")

	raw, err := s.provider.GetRoute(ctx, origin, destination)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("origin_lat", origin.Lat).
			Float64("origin_lon", origin.Lon).
			Float64("dest_lat", destination.Lat).
			Float64("dest_lon", destination.Lon).
			Msg("failed to fetch route")
		return nil, err
	}

	steps := s.annotate(raw.Steps, disasterType)

	blocked := 0
	for _, step := range steps {
		if step.Blocked {
			blocked++
		}
	}

	s.logger.Debug().
		Int("step_count", len(steps)).
		Int("blocked_steps", blocked).
		Float64("distance_m", raw.DistanceMeters).
		Msg("assembled annotated route")

	return &RouteResult{
		TotalDistanceMeters:  raw.DistanceMeters,
		TotalDurationSeconds: raw.DurationSeconds,
		GeometryPolyline:     raw.GeometryPolyline,
		Steps:                steps,
	}, nil
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}
