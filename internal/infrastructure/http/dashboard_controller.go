package http

import (
	"net/http"
	"time"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"
)

const defaultTopHosts = 5

// HTTPDashboardController serves the aggregated dashboard views
type HTTPDashboardController struct {
	dashboardService *services.DashboardService
}

// NewHTTPDashboardController creates a new dashboard controller
func NewHTTPDashboardController(dashboardService *services.DashboardService) *HTTPDashboardController {
	return &HTTPDashboardController{dashboardService: dashboardService}
}

// GetOverview handles GET /admin/dashboard
func (c *HTTPDashboardController) GetOverview(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBookingFilter(r)
	if err != nil {
		response.SendBadRequest(w, r, err.Error())
		return
	}

	overview, warnings, err := c.dashboardService.GetOverview(r.Context(), filter, time.Now().UTC())
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccessWithWarnings(w, r, overview, warnings)
}

// GetRevenueSeries handles GET /admin/dashboard/revenue-series
func (c *HTTPDashboardController) GetRevenueSeries(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		response.SendBadRequest(w, r, err.Error())
		return
	}
	topN := parseIntParam(r, "top", defaultTopHosts)

	series, warnings, err := c.dashboardService.GetRevenueSeries(r.Context(), rng, topN, time.Now().UTC())
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccessWithWarnings(w, r, series, warnings)
}

// GetTopProperties handles GET /admin/dashboard/top-properties
func (c *HTTPDashboardController) GetTopProperties(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBookingFilter(r)
	if err != nil {
		response.SendBadRequest(w, r, err.Error())
		return
	}
	n := parseIntParam(r, "limit", defaultTopHosts)

	entries, warnings, err := c.dashboardService.GetTopProperties(r.Context(), filter, n, time.Now().UTC())
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccessWithWarnings(w, r, entries, warnings)
}
