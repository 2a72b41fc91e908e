package guidance

import (
	"context"

	"github.com/rs/zerolog"
)

// ServiceConfig holds dependencies for the guidance service.
type ServiceConfig struct {
	// Generator produces advisories. May be nil when the deployment has
	// no model credentials; the service then reports ErrUnavailable.
	Generator Generator

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service generates safety advisories. Each call is a single generator
// round-trip; failed generations are not retried.
type Service struct {
	generator Generator
	logger    zerolog.Logger
}

// NewService creates a new guidance service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		generator: cfg.Generator,
		logger:    cfg.Logger,
	}
}

// Configured reports whether a generator is wired in.
func (s *Service) Configured() bool {
	return s.generator != nil
}

// GenerateAdvisory produces a safety briefing for the request.
func (s *Service) GenerateAdvisory(ctx context.Context, req Request) (*Advisory, error) {
	if s.generator == nil {
		s.logger.Debug().Msg("no guidance generator configured")
		return nil, ErrUnavailable
	}

	s.logger.Debug().
		Str("disaster_type", req.DisasterType).
		Str("generator", s.generator.Name()).
		Msg("generating advisory")

	advisory, err := s.generator.GenerateAdvisory(ctx, req)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("generator", s.generator.Name()).
			Msg("advisory generation failed")
		return nil, err
	}

	s.logger.Debug().
		Str("model", advisory.Model).
		Int("text_length", len(advisory.Text)).
		Msg("advisory generated")

	return advisory, nil
}

// GeneratorName returns the configured generator's name, or empty when
// none is wired in.
func (s *Service) GeneratorName() string {
	if s.generator == nil {
		return ""
	}
	return s.generator.Name()
}
