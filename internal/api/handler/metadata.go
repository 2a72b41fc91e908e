package handler

import (
	"net/http"

	"github.com/disasternav/disasternav/internal/api/models"
	"github.com/disasternav/disasternav/internal/api/response"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetEnums handles GET /v1/metadata/enums - enum values used by the API.
// The UI builds its disaster-type select from this.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.DefaultEnums())
}

// GetContacts handles GET /v1/metadata/contacts - the static emergency
// numbers rendered in the plan footer.
func (h *MetadataHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.DefaultContacts())
}
