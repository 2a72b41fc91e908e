package handler

import (
	"net/http"
	"time"

	"github.com/disasternav/disasternav/internal/api/models"
	"github.com/disasternav/disasternav/internal/api/response"
	"github.com/disasternav/disasternav/internal/provider/resilience"
)

// GuidanceStatus reports whether advisory generation is configured.
type GuidanceStatus interface {
	Configured() bool
	GeneratorName() string
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
	guidance  GuidanceStatus
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry, guidance GuidanceStatus) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
		guidance:  guidance,
	}
}

// HealthCheck handles GET /v1/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/status - circuit state per upstream
// provider plus whether advisory generation has credentials.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	var providers []models.ProviderStatus
	if h.registry != nil {
		providers = models.NewProviderStatuses(h.registry.GetAllHealth())
	}

	if h.guidance != nil {
		status := models.HealthStatusOK
		message := ""
		if !h.guidance.Configured() {
			status = models.HealthStatusDegraded
			message = "no API key configured; plans will fail at the guidance stage"
		}
		name := h.guidance.GeneratorName()
		if name == "" {
			name = "guidance"
		}
		providers = append(providers, models.ProviderStatus{
			Provider: name,
			Status:   status,
			Message:  message,
		})
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:    models.OverallStatus(providers),
		Time:      models.Timestamp(time.Now()),
		Providers: providers,
	})
}
