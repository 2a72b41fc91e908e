package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/disasternav/disasternav/internal/api/models"
	"github.com/disasternav/disasternav/internal/api/response"
	"github.com/disasternav/disasternav/internal/routing"
)

// RouteService assembles annotated routes between two points.
type RouteService interface {
	PlanRoute(ctx context.Context, origin, destination routing.Coordinate, disasterType string) (*routing.RouteResult, error)
}

// RouteHandler handles route preview endpoints.
type RouteHandler struct {
	routes RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routes RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// PreviewRoute handles POST /v1/routes:preview - assemble and annotate a
// route to an explicit destination, skipping resource lookup and guidance.
func (h *RouteHandler) PreviewRoute(w http.ResponseWriter, r *http.Request) {
	var input models.RoutePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var fieldErrors []models.FieldError
	if input.Origin == nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "origin", Message: "required", Code: "REQUIRED"})
	} else {
		fieldErrors = append(fieldErrors, validatePoint("origin", *input.Origin)...)
	}
	if input.Destination == nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "destination", Message: "required", Code: "REQUIRED"})
	} else {
		fieldErrors = append(fieldErrors, validatePoint("destination", *input.Destination)...)
	}
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "origin and destination are required", fieldErrors)
		return
	}

	disasterType := input.DisasterType
	if disasterType == "" {
		disasterType = models.DisasterOther
	}

	result, err := h.routes.PlanRoute(r.Context(),
		routing.Coordinate{Lat: input.Origin.Lat, Lon: input.Origin.Lon},
		routing.Coordinate{Lat: input.Destination.Lat, Lon: input.Destination.Lon},
		string(disasterType),
	)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.RoutePreviewResponse{
		DisasterType: disasterType,
		Route:        models.NewRoute(result),
	})
}
