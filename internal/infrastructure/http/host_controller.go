package http

import (
	"encoding/json"
	"net/http"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/internal/domain/model"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"

	"github.com/go-chi/chi/v5"
)

// HTTPHostController handles the host management endpoints
type HTTPHostController struct {
	hostService *services.HostService
}

// NewHTTPHostController creates a new host controller
func NewHTTPHostController(hostService *services.HostService) *HTTPHostController {
	return &HTTPHostController{hostService: hostService}
}

// ListHosts handles GET /hosts
func (c *HTTPHostController) ListHosts(w http.ResponseWriter, r *http.Request) {
	hosts, err := c.hostService.ListHosts(r.Context())
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"hosts": hosts,
		"count": len(hosts),
	})
}

// GetHostProperties handles GET /hosts/{id}/properties
func (c *HTTPHostController) GetHostProperties(w http.ResponseWriter, r *http.Request) {
	hostID := chi.URLParam(r, "id")

	properties, err := c.hostService.GetHostProperties(r.Context(), hostID)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"host_id":    hostID,
		"properties": properties,
		"count":      len(properties),
	})
}

// UpdateStatus handles PATCH /hosts/{id}/status
func (c *HTTPHostController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	hostID := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	if err := c.hostService.UpdateStatus(r.Context(), hostID, model.HostStatus(req.Status)); err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"host_id": hostID,
		"status":  req.Status,
	})
}
