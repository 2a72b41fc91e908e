package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/disasternav/disasternav/internal/api/models"
	"github.com/disasternav/disasternav/internal/api/response"
	"github.com/disasternav/disasternav/internal/resources"
)

// ResourceService looks up nearby emergency resources.
type ResourceService interface {
	FindNearby(ctx context.Context, q resources.Query) ([]resources.Resource, error)
}

// ResourcesHandler handles resource lookup endpoints.
type ResourcesHandler struct {
	resources ResourceService
}

// NewResourcesHandler creates a new ResourcesHandler.
func NewResourcesHandler(rs ResourceService) *ResourcesHandler {
	return &ResourcesHandler{resources: rs}
}

// ListResources handles GET /v1/resources - list emergency resources near
// a point, in provider order, each with its crow-flies distance.
func (h *ResourcesHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		response.BadRequest(w, r, "lat must be a number", []models.FieldError{
			{Field: "lat", Message: "must be a number", Code: "INVALID"},
		})
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		response.BadRequest(w, r, "lon must be a number", []models.FieldError{
			{Field: "lon", Message: "must be a number", Code: "INVALID"},
		})
		return
	}
	if fieldErrors := validatePoint("", models.Point{Lat: lat, Lon: lon}); len(fieldErrors) > 0 {
		response.BadRequest(w, r, "coordinates are out of range", fieldErrors)
		return
	}

	radius := 0
	if raw := q.Get("radiusMeters"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius < 0 {
			response.BadRequest(w, r, "radiusMeters must be a non-negative integer", []models.FieldError{
				{Field: "radiusMeters", Message: "must be a non-negative integer", Code: "INVALID"},
			})
			return
		}
	}

	found, err := h.resources.FindNearby(r.Context(), resources.Query{
		Lat:          lat,
		Lon:          lon,
		RadiusMeters: radius,
		Category:     q.Get("category"),
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.ResourceList{
		Items: models.NewResources(found),
	})
}
