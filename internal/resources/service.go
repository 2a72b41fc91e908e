package resources

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/pkg/polyline"
)

// ServiceConfig holds configuration for the resources service.
type ServiceConfig struct {
	// Provider is the resource lookup provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service looks up nearby emergency resources. Provider order is preserved:
// the first element is the one evacuation planning navigates to.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new resources service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// FindNearby returns the emergency resources around the query point in
// provider order, each annotated with its crow-flies distance from the
// query point.
func (s *Service) FindNearby(ctx context.Context, q Query) ([]Resource, error) {
	if q.RadiusMeters <= 0 {
		q.RadiusMeters = DefaultRadiusMeters
	}
	if q.Category == "" {
		q.Category = DefaultCategory
	}

	s.logger.Debug().
		Float64("lat", q.Lat).
		Float64("lon", q.Lon).
		Int("radius_m", q.RadiusMeters).
		Str("category", q.Category).
		Str("provider", s.provider.Name()).
		Msg("looking up nearby resources")

	found, err := s.provider.FindNearby(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", q.Lat).
			Float64("lon", q.Lon).
			Msg("resource lookup failed")
		return nil, err
	}

	origin := polyline.Coordinate{Lat: q.Lat, Lon: q.Lon}
	for i := range found {
		found[i].DistanceMeters = polyline.Distance(origin, polyline.Coordinate{
			Lat: found[i].Lat,
			Lon: found[i].Lon,
		})
	}

	s.logger.Debug().
		Int("resource_count", len(found)).
		Msg("resource lookup complete")

	return found, nil
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}
