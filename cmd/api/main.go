// Package main provides the entrypoint for the disasternav API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/internal/api"
	"github.com/disasternav/disasternav/internal/api/middleware"
	"github.com/disasternav/disasternav/internal/config"
	"github.com/disasternav/disasternav/internal/guidance"
	"github.com/disasternav/disasternav/internal/guidance/euri"
	"github.com/disasternav/disasternav/internal/hazard"
	"github.com/disasternav/disasternav/internal/plan"
	"github.com/disasternav/disasternav/internal/provider/resilience"
	"github.com/disasternav/disasternav/internal/resources"
	"github.com/disasternav/disasternav/internal/resources/overpass"
	"github.com/disasternav/disasternav/internal/routing"
	"github.com/disasternav/disasternav/internal/routing/openrouteservice"
	"github.com/disasternav/disasternav/internal/routing/osrm"
	"github.com/disasternav/disasternav/internal/telemetry"
	"github.com/disasternav/disasternav/internal/web"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "disasternav-api"

	cfg := config.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Env).
		Msg("starting disasternav API")

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OTELEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Provider health registry backs /v1/status
	registry := resilience.NewRegistry()

	// Resource lookup via Overpass
	overpassClient := overpass.NewClient(overpass.ClientConfig{
		BaseURL:  cfg.OverpassBaseURL,
		Timeout:  cfg.UpstreamTimeout,
		Registry: registry,
		Logger:   log,
	})
	resourceService := resources.NewService(resources.ServiceConfig{
		Provider: overpassClient,
		Logger:   log,
	})
	log.Info().Msg("resource service initialized")

	// Routing provider selection
	var routeProvider routing.Provider
	switch cfg.RoutingProvider {
	case "openrouteservice":
		if cfg.ORSAPIKey == "" {
			log.Fatal().Msg("ORS_API_KEY is required when ROUTING_PROVIDER=openrouteservice")
		}
		routeProvider = openrouteservice.NewClient(openrouteservice.ClientConfig{
			APIKey:   cfg.ORSAPIKey,
			BaseURL:  cfg.ORSBaseURL,
			Timeout:  cfg.UpstreamTimeout,
			Registry: registry,
			Logger:   log,
		})
	default:
		routeProvider = osrm.NewClient(osrm.ClientConfig{
			BaseURL:  cfg.OSRMBaseURL,
			Timeout:  cfg.UpstreamTimeout,
			Registry: registry,
			Logger:   log,
		})
	}
	routingService := routing.NewService(routing.ServiceConfig{
		Provider: routeProvider,
		Annotate: hazard.Annotate,
		Logger:   log,
	})
	log.Info().
		Str("provider", cfg.RoutingProvider).
		Msg("routing service initialized")

	// Safety advisory generation. Without credentials the service runs
	// degraded: plans fail at the guidance stage and /v1/status says so.
	var generator guidance.Generator
	if cfg.GuidanceConfigured() {
		generator = euri.NewClient(euri.ClientConfig{
			APIKey:  cfg.EURIAPIKey,
			Model:   cfg.EURIModel,
			BaseURL: cfg.EURIBaseURL,
			Logger:  log,
		})
		log.Info().Msg("guidance service initialized")
	} else {
		log.Warn().Msg("EURI_API_KEY not set - advisory generation unavailable")
	}
	guidanceService := guidance.NewService(guidance.ServiceConfig{
		Generator: generator,
		Logger:    log,
	})

	planService := plan.NewService(plan.ServiceConfig{
		Resources: resourceService,
		Routing:   routingService,
		Guidance:  guidanceService,
		Logger:    log,
	})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		RequireTLS:      cfg.RequireTLS,
		PlanService:     planService,
		RouteService:    routingService,
		ResourceService: resourceService,
		Guidance:        guidanceService,
		Registry:        registry,
		UI:              web.Handler(),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
