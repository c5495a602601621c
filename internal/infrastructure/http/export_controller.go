package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"
)

// HTTPExportController streams report downloads
type HTTPExportController struct {
	exportService *services.ExportService
}

// NewHTTPExportController creates a new export controller
func NewHTTPExportController(exportService *services.ExportService) *HTTPExportController {
	return &HTTPExportController{exportService: exportService}
}

// ExportBookings handles GET /admin/export/bookings. The file is built in
// memory first so a failed export returns a JSON error instead of a
// truncated download.
func (c *HTTPExportController) ExportBookings(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBookingFilter(r)
	if err != nil {
		response.SendBadRequest(w, r, err.Error())
		return
	}

	now := time.Now().UTC()
	var buf bytes.Buffer
	if _, err := c.exportService.ExportBookingsCSV(r.Context(), &buf, filter, now); err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", now.Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
