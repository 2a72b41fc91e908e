// Package overpass provides a client for Overpass API interpreters.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/internal/provider/resilience"
	"github.com/disasternav/disasternav/internal/resources"
)

const (
	// ProviderName identifies this provider.
	ProviderName = "overpass"

	// DefaultBaseURL is the public Overpass interpreter.
	DefaultBaseURL = "https://overpass-api.de"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 15 * time.Second
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Overpass client.
type ClientConfig struct {
	// BaseURL is the interpreter base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 15s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Overpass interpreter client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Overpass client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		if cfg.Registry != nil {
			clientCfg.Registry = cfg.Registry
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// API response types (from the Overpass interpreter).

type interpreterResponse struct {
	Version   float64   `json:"version,omitempty"`
	Generator string    `json:"generator,omitempty"`
	Elements  []element `json:"elements"`
}

type element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags,omitempty"`
}

// FindNearby queries nodes tagged emergency=<category> within the radius
// around the query point. Elements come back in interpreter order; an empty
// result is not an error.
func (c *Client) FindNearby(ctx context.Context, q resources.Query) ([]resources.Resource, error) {
	query := buildQuery(q)

	url := c.baseURL + "/api/interpreter"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Float64("lat", q.Lat).
		Float64("lon", q.Lon).
		Int("radius_m", q.RadiusMeters).
		Str("category", q.Category).
		Msg("querying overpass interpreter")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", resources.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", resources.ErrLookupFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: interpreter returned status %d", resources.ErrLookupFailed, resp.StatusCode)
	}

	var parsed interpreterResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", resources.ErrLookupFailed, err)
	}

	found := make([]resources.Resource, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		name := el.Tags["name"]
		if name == "" {
			name = resources.DefaultName
		}
		found = append(found, resources.Resource{
			ID:   el.ID,
			Name: name,
			Lat:  el.Lat,
			Lon:  el.Lon,
			Tags: el.Tags,
		})
	}

	c.logger.Debug().
		Int("element_count", len(found)).
		Msg("overpass query complete")

	return found, nil
}

// buildQuery renders the Overpass QL body. The interpreter accepts the
// query as a raw POST body.
func buildQuery(q resources.Query) string {
	return fmt.Sprintf("[out:json];node[%q=%q](around:%d,%f,%f);out body;",
		"emergency", q.Category, q.RadiusMeters, q.Lat, q.Lon)
}
