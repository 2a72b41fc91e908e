// Package guidance generates situational safety advisories for emergencies.
package guidance

import (
	"context"
	"errors"
)

// Sentinel errors for guidance generation.
var (
	// ErrUnavailable indicates no generator is configured.
	ErrUnavailable = errors.New("guidance service unavailable")

	// ErrGenerationFailed indicates the generator was reached but failed.
	ErrGenerationFailed = errors.New("guidance generation failed")
)

// Request describes the emergency the advisory is written for.
type Request struct {
	Description  string
	DisasterType string
	Lat          float64
	Lon          float64
}

// Advisory is a generated safety briefing. Text is free-form and rendered
// to the user as-is.
type Advisory struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// Generator produces advisories from an upstream language model.
type Generator interface {
	// GenerateAdvisory returns a safety briefing for the request.
	GenerateAdvisory(ctx context.Context, req Request) (*Advisory, error)

	// Name returns the generator name for logging and health checks.
	Name() string
}
