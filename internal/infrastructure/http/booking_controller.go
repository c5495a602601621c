package http

import (
	"encoding/json"
	"net/http"
	"time"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/internal/domain/model"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"

	"github.com/go-chi/chi/v5"
)

// HTTPBookingController handles the booking management endpoints
type HTTPBookingController struct {
	bookingService *services.BookingService
}

// NewHTTPBookingController creates a new booking controller
func NewHTTPBookingController(bookingService *services.BookingService) *HTTPBookingController {
	return &HTTPBookingController{bookingService: bookingService}
}

// ListBookings handles GET /bookings
func (c *HTTPBookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBookingFilter(r)
	if err != nil {
		response.SendBadRequest(w, r, err.Error())
		return
	}

	bookings, warnings, err := c.bookingService.ListBookings(r.Context(), filter, time.Now().UTC())
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccessWithMeta(w, r, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
	}, &response.Meta{Total: len(bookings), Warnings: warnings})
}

// GetBooking handles GET /bookings/{id}
func (c *HTTPBookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	booking, err := c.bookingService.GetBooking(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, booking)
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (c *HTTPBookingController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	if err := c.bookingService.UpdateStatus(r.Context(), id, model.BookingStatus(req.Status)); err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"booking_id": id,
		"status":     req.Status,
	})
}

// DeleteBooking handles DELETE /bookings/{id}
func (c *HTTPBookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.bookingService.DeleteBooking(r.Context(), id); err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendNoContent(w, r)
}
