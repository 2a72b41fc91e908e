// Package api provides the HTTP API for disasternav.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/disasternav/disasternav/internal/api/handler"
	"github.com/disasternav/disasternav/internal/api/middleware"
	"github.com/disasternav/disasternav/internal/provider/resilience"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version         string
	BuildTime       string
	Logger          zerolog.Logger
	ServiceName     string
	Metrics         *middleware.Metrics
	RequireTLS      bool
	PlanService     handler.PlanService
	RouteService    handler.RouteService
	ResourceService handler.ResourceService
	Guidance        handler.GuidanceStatus
	Registry        *resilience.Registry

	// UI serves the embedded map frontend at the root. Nil disables it
	// (API-only deployments and most tests).
	UI http.Handler
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "disasternav-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))        // Structured logging
	r.Use(middleware.Recovery(cfg.Logger))      // Panic recovery
	r.Use(chimiddleware.RealIP)                 // Real IP extraction
	r.Use(middleware.SecurityHeaders)           // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS(cfg.RequireTLS)) // TLS enforcement behind a proxy

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Registry, cfg.Guidance)
	planHandler := handler.NewPlanHandler(cfg.PlanService)
	routeHandler := handler.NewRouteHandler(cfg.RouteService)
	resourcesHandler := handler.NewResourcesHandler(cfg.ResourceService)
	metadataHandler := handler.NewMetadataHandler()

	// Create rate limit middleware for different endpoint categories
	planRateLimit := middleware.RateLimitByIP(middleware.PlanRateLimit)           // 10 req/min
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes. JSON content handling stays inside this group so the
	// static UI keeps extension-derived content types.
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireJSON)

		// Ops endpoints (public)
		r.Get("/health", opsHandler.HealthCheck)
		r.Get("/status", opsHandler.SystemStatus)

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
			r.Get("/contacts", metadataHandler.GetContacts)
		})

		// Resource lookup - one upstream call per request
		r.With(expensiveRateLimit).Get("/resources", resourcesHandler.ListResources)

		// Route preview - one upstream call per request
		r.With(expensiveRateLimit).Post("/routes:preview", routeHandler.PreviewRoute)

		// Plan generation - three upstream calls per request, strictest limit
		r.With(planRateLimit).Post("/plans:generate", planHandler.GeneratePlan)
	})

	// Embedded map UI at the root
	if cfg.UI != nil {
		r.With(standardRateLimit).Handle("/*", cfg.UI)
	}

	return r
}
