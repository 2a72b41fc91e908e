// Package handler provides HTTP handlers for the disasternav API.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/disasternav/disasternav/internal/api/models"
	"github.com/disasternav/disasternav/internal/api/response"
	"github.com/disasternav/disasternav/internal/plan"
)

// PlanService generates evacuation plans.
type PlanService interface {
	Generate(ctx context.Context, req plan.Request) (*plan.Plan, error)
}

// PlanHandler handles evacuation plan endpoints.
type PlanHandler struct {
	plans PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// GeneratePlan handles POST /v1/plans:generate - run the full pipeline:
// resource lookup, route assembly with blockage annotation, advisory.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var input models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if input.Origin == nil {
		response.BadRequest(w, r, "origin is required", []models.FieldError{
			{Field: "origin", Message: "required", Code: "REQUIRED"},
		})
		return
	}
	if fieldErrors := validatePoint("origin", *input.Origin); len(fieldErrors) > 0 {
		response.BadRequest(w, r, "origin is out of range", fieldErrors)
		return
	}

	disasterType := input.DisasterType
	if disasterType == "" {
		disasterType = models.DisasterOther
	}

	p, err := h.plans.Generate(r.Context(), plan.Request{
		Description:  input.Description,
		DisasterType: string(disasterType),
		Lat:          input.Origin.Lat,
		Lon:          input.Origin.Lon,
		RadiusMeters: input.RadiusMeters,
		Category:     input.Category,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewPlanResponse(p))
}

// validatePoint range-checks a coordinate and reports per-field errors.
// The prefix names the enclosing object ("origin" -> "origin.lat"); an
// empty prefix reports bare field names for query parameters.
func validatePoint(prefix string, p models.Point) []models.FieldError {
	if prefix != "" {
		prefix += "."
	}
	var errs []models.FieldError
	if p.Lat < -90 || p.Lat > 90 {
		errs = append(errs, models.FieldError{
			Field: prefix + "lat", Message: "must be between -90 and 90", Code: "OUT_OF_RANGE",
		})
	}
	if p.Lon < -180 || p.Lon > 180 {
		errs = append(errs, models.FieldError{
			Field: prefix + "lon", Message: "must be between -180 and 180", Code: "OUT_OF_RANGE",
		})
	}
	return errs
}
