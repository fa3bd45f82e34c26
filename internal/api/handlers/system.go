package handlers

import (
	"net/http"
	"strings"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/response"
	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// VersionResponse represents the version endpoint response
type VersionResponse struct {
	Version string `json:"version"`
}

// SetAPIKeyRequest carries the new API key for the write-protection middleware.
type SetAPIKeyRequest struct {
	Key string `json:"key"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// Version returns the service build version.
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, VersionResponse{
		Version: h.systemService.CheckVersion(),
	})
}

// SetAPIKey handles POST requests to store the API key that guards write
// endpoints. The key is encrypted at rest when a fernet key is configured.
//
// Endpoint: POST /api/system/apikey
// Response: 204 No Content
// Error: 400 Bad Request if the body is invalid or the key is blank
// Error: 500 Internal Server Error if storage fails
func (h *SystemHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[SetAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Key) == "" {
		response.RespondError(w, http.StatusBadRequest, "key is required", "")
		return
	}

	if err := h.systemService.SetAPIKey(r.Context(), req.Key); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSetAPIKey.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
