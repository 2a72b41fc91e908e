package models

import (
	"sort"

	"github.com/disasternav/disasternav/internal/provider/resilience"
)

// Health represents the health status of the service.
type Health struct {
	Status  HealthStatus           `json:"status"`
	Time    Timestamp              `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SystemStatus represents the overall system status.
type SystemStatus struct {
	Status    HealthStatus     `json:"status"`
	Time      Timestamp        `json:"time"`
	Providers []ProviderStatus `json:"providers"`
}

// ProviderStatus represents the status of an external provider.
type ProviderStatus struct {
	Provider      string       `json:"provider"`
	Status        HealthStatus `json:"status"`
	CircuitState  string       `json:"circuitState"`
	LastSuccessAt *Timestamp   `json:"lastSuccessAt,omitempty"`
	LastFailureAt *Timestamp   `json:"lastFailureAt,omitempty"`
	Message       string       `json:"message,omitempty"`
}

// NewProviderStatus maps a provider health snapshot onto the API shape.
func NewProviderStatus(h *resilience.ProviderHealth) ProviderStatus {
	status := HealthStatusOK
	switch {
	case h.IsUnhealthy():
		status = HealthStatusFail
	case h.IsDegraded():
		status = HealthStatusDegraded
	}

	ps := ProviderStatus{
		Provider:     h.Name,
		Status:       status,
		CircuitState: h.CircuitState.String(),
		Message:      h.LastError,
	}
	if h.LastSuccessAt != nil {
		ts := Timestamp(*h.LastSuccessAt)
		ps.LastSuccessAt = &ts
	}
	if h.LastFailureAt != nil {
		ts := Timestamp(*h.LastFailureAt)
		ps.LastFailureAt = &ts
	}
	return ps
}

// NewProviderStatuses maps all health snapshots, sorted by provider name
// for stable output.
func NewProviderStatuses(health []*resilience.ProviderHealth) []ProviderStatus {
	out := make([]ProviderStatus, 0, len(health))
	for _, h := range health {
		out = append(out, NewProviderStatus(h))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out
}

// OverallStatus reduces provider statuses to a single system status: any
// FAIL makes the system FAIL, any DEGRADED makes it DEGRADED.
func OverallStatus(providers []ProviderStatus) HealthStatus {
	status := HealthStatusOK
	for _, p := range providers {
		switch p.Status {
		case HealthStatusFail:
			return HealthStatusFail
		case HealthStatusDegraded:
			status = HealthStatusDegraded
		}
	}
	return status
}
