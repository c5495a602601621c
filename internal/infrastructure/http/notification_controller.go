package http

import (
	"net/http"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"

	"github.com/go-chi/chi/v5"
)

// HTTPNotificationController handles the admin feed endpoints
type HTTPNotificationController struct {
	notificationService *services.NotificationService
}

// NewHTTPNotificationController creates a new notification controller
func NewHTTPNotificationController(notificationService *services.NotificationService) *HTTPNotificationController {
	return &HTTPNotificationController{notificationService: notificationService}
}

// ListNotifications handles GET /notifications
func (c *HTTPNotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 0)

	notifications, err := c.notificationService.ListRecent(r.Context(), limit)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkRead handles PATCH /notifications/{id}/read
func (c *HTTPNotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.notificationService.MarkRead(r.Context(), id); err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"notification_id": id,
		"read":            true,
	})
}
