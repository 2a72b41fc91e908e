// Package osrm provides a client for the OSRM route service API.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/internal/provider/resilience"
	"github.com/disasternav/disasternav/internal/routing"
)

const (
	// ProviderName identifies this routing provider.
	ProviderName = "osrm"

	// DefaultBaseURL is the public OSRM demo server.
	DefaultBaseURL = "https://router.project-osrm.org"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 15 * time.Second

	// profileDriving is the only profile this system routes with.
	profileDriving = "driving"
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OSRM client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the demo server).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 15s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OSRM route service client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new OSRM client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetRoute retrieves a single driving route between two points.
func (c *Client) GetRoute(ctx context.Context, origin, destination routing.Coordinate) (*routing.RawRoute, error) {
	// OSRM takes coordinates in lon,lat order. steps=true is required for
	// the per-instruction breakdown; overview=full keeps the complete
	// geometry.
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&steps=true",
		c.baseURL, profileDriving,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Float64("origin_lat", origin.Lat).
		Float64("origin_lon", origin.Lon).
		Float64("dest_lat", destination.Lat).
		Float64("dest_lon", destination.Lon).
		Msg("requesting route from OSRM")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach routing service",
			Err:      routing.ErrServiceUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("SERVER_%d", resp.StatusCode),
			Message:  "routing service is temporarily unavailable",
			Err:      routing.ErrServiceUnavailable,
		}
	}

	// OSRM reports NoRoute and friends with a 4xx status and a code in the
	// body, so the body is parsed before the status is judged.
	var osrmResp routeResponse
	if err := json.Unmarshal(respBody, &osrmResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &routing.Error{
				Provider: ProviderName,
				Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
				Message:  fmt.Sprintf("routing service returned status %d", resp.StatusCode),
				Err:      routing.ErrServiceUnavailable,
			}
		}
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "BAD_BODY",
			Message:  "routing response is not valid JSON",
			Err:      routing.ErrInvalidFormat,
		}
	}

	if osrmResp.Code != codeOk || len(osrmResp.Routes) == 0 {
		code := osrmResp.Code
		if code == "" || code == codeOk {
			code = "NO_ROUTE"
		}
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     code,
			Message:  "no route found between the given points",
			Err:      routing.ErrNoRouteFound,
		}
	}

	route := &osrmResp.Routes[0]
	if len(route.Legs) == 0 {
		return nil, &routing.Error{
			Provider: ProviderName,
			Code:     "MISSING_LEGS",
			Message:  "route response has no legs",
			Err:      routing.ErrInvalidFormat,
		}
	}

	result := c.toRawRoute(route)

	c.logger.Debug().
		Float64("distance_m", result.DistanceMeters).
		Float64("duration_s", result.DurationSeconds).
		Int("step_count", len(result.Steps)).
		Msg("received route from OSRM")

	return result, nil
}

// toRawRoute converts the first leg of an OSRM route to the domain model.
func (c *Client) toRawRoute(route *osrmRoute) *routing.RawRoute {
	leg := &route.Legs[0]

	steps := make([]routing.RawStep, 0, len(leg.Steps))
	for i := range leg.Steps {
		step := &leg.Steps[i]
		steps = append(steps, routing.RawStep{
			Instruction:     instructionText(step),
			DistanceMeters:  step.Distance,
			DurationSeconds: step.Duration,
			RoadName:        step.Name,
		})
	}

	return &routing.RawRoute{
		GeometryPolyline: route.Geometry,
		DistanceMeters:   route.Distance,
		DurationSeconds:  route.Duration,
		Steps:            steps,
	}
}

// instructionText returns the provider's instruction string when present.
// Stock OSRM does not emit one, so a plain-English instruction is composed
// from the maneuver type, its modifier, and the road name.
func instructionText(step *routeStep) string {
	if step.Maneuver.Instruction != "" {
		return step.Maneuver.Instruction
	}

	road := step.Name
	switch step.Maneuver.Type {
	case "depart":
		return withRoad("Head out", "on", road)
	case "arrive":
		return "Arrive at your destination"
	case "turn", "end of road":
		return withRoad(withModifier("Turn", step.Maneuver.Modifier), "onto", road)
	case "fork":
		return withRoad(withModifier("Keep", step.Maneuver.Modifier), "toward", road)
	case "merge":
		return withRoad("Merge", "onto", road)
	case "on ramp":
		return withRoad("Take the ramp", "onto", road)
	case "off ramp":
		return withRoad("Take the exit", "onto", road)
	case "roundabout", "rotary":
		return withRoad("Take the roundabout", "onto", road)
	default:
		return withRoad("Continue", "on", road)
	}
}

func withModifier(verb, modifier string) string {
	if modifier == "" {
		return verb
	}
	return verb + " " + modifier
}

func withRoad(base, preposition, road string) string {
	if road == "" {
		return base
	}
	return base + " " + preposition + " " + road
}
