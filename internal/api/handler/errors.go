package handler

import (
	"errors"
	"net/http"

	"github.com/disasternav/disasternav/internal/api/response"
	"github.com/disasternav/disasternav/internal/guidance"
	"github.com/disasternav/disasternav/internal/plan"
	"github.com/disasternav/disasternav/internal/resources"
	"github.com/disasternav/disasternav/internal/routing"
)

// writeDomainError maps pipeline errors onto problem responses. Validation
// failures are the caller's fault, missing resources or routes are 404s,
// and everything the upstream providers break is a bad gateway.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, plan.ErrEmptyInput):
		response.BadRequest(w, r, "emergency description is required", nil)
	case errors.Is(err, plan.ErrNoResources):
		response.NotFound(w, r, "no emergency resources found within the search radius")
	case errors.Is(err, routing.ErrNoRouteFound):
		response.NotFound(w, r, "no route found to the nearest emergency resource")
	case errors.Is(err, resources.ErrLookupFailed):
		response.BadGateway(w, r, "emergency resource lookup failed")
	case errors.Is(err, routing.ErrServiceUnavailable):
		response.BadGateway(w, r, "routing service is unavailable")
	case errors.Is(err, routing.ErrInvalidFormat):
		response.BadGateway(w, r, "routing service returned an unusable response")
	case errors.Is(err, guidance.ErrUnavailable):
		response.BadGateway(w, r, "guidance service is not configured")
	case errors.Is(err, guidance.ErrGenerationFailed):
		response.BadGateway(w, r, "guidance generation failed")
	default:
		response.InternalError(w, r, "an unexpected error occurred")
	}
}
