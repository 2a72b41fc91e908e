// Package config loads service configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the API server.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// Env is the deployment environment name.
	Env string

	// OverpassBaseURL overrides the resource lookup endpoint when set.
	OverpassBaseURL string

	// RoutingProvider selects the routing backend: "osrm" (default) or
	// "openrouteservice".
	RoutingProvider string
	// OSRMBaseURL overrides the OSRM endpoint when set.
	OSRMBaseURL string
	// ORSAPIKey authenticates against openrouteservice. Required when
	// RoutingProvider is "openrouteservice".
	ORSAPIKey string
	// ORSBaseURL overrides the openrouteservice endpoint when set.
	ORSBaseURL string

	// UpstreamTimeout bounds each upstream HTTP call.
	UpstreamTimeout time.Duration

	// EURIAPIKey authenticates advisory generation. Empty means the
	// guidance service runs unconfigured and reports unavailable.
	EURIAPIKey string
	// EURIModel overrides the advisory model when set.
	EURIModel string
	// EURIBaseURL overrides the advisory gateway endpoint when set.
	EURIBaseURL string

	// OTELEnabled turns on trace and metric export.
	OTELEnabled bool
	// OTLPEndpoint is the OTLP gRPC collector address.
	OTLPEndpoint string

	// RequireTLS redirects plain HTTP requests to HTTPS.
	RequireTLS bool
}

// Load reads a .env file if one is present, then builds the config from
// the environment. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv creates a Config from environment variables. Base URLs and the
// model name default to empty; the provider clients fill in their own
// defaults for empty values.
func FromEnv() Config {
	timeout, err := time.ParseDuration(getEnvOrDefault("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		timeout = 15 * time.Second
	}

	return Config{
		Port: getEnvOrDefault("APP_PORT", "8080"),
		Env:  getEnvOrDefault("APP_ENV", "development"),

		OverpassBaseURL: os.Getenv("OVERPASS_BASE_URL"),

		RoutingProvider: getEnvOrDefault("ROUTING_PROVIDER", "osrm"),
		OSRMBaseURL:     os.Getenv("OSRM_BASE_URL"),
		ORSAPIKey:       os.Getenv("ORS_API_KEY"),
		ORSBaseURL:      os.Getenv("ORS_BASE_URL"),

		UpstreamTimeout: timeout,

		EURIAPIKey:  os.Getenv("EURI_API_KEY"),
		EURIModel:   os.Getenv("EURI_MODEL"),
		EURIBaseURL: os.Getenv("EURI_BASE_URL"),

		OTELEnabled:  os.Getenv("OTEL_ENABLED") == "true",
		OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		RequireTLS: os.Getenv("REQUIRE_TLS") == "true",
	}
}

// GuidanceConfigured reports whether advisory generation has credentials.
func (c Config) GuidanceConfigured() bool {
	return c.EURIAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
