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

// HTTPSubscriptionController handles the subscription payment review
// endpoints
type HTTPSubscriptionController struct {
	subscriptionService *services.SubscriptionService
}

// NewHTTPSubscriptionController creates a new subscription controller
func NewHTTPSubscriptionController(subscriptionService *services.SubscriptionService) *HTTPSubscriptionController {
	return &HTTPSubscriptionController{subscriptionService: subscriptionService}
}

// ListPayments handles GET /subscriptions/payments
func (c *HTTPSubscriptionController) ListPayments(w http.ResponseWriter, r *http.Request) {
	status := model.SubscriptionStatus(r.URL.Query().Get("status"))

	payments, err := c.subscriptionService.ListPayments(r.Context(), status)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"payments": payments,
		"count":    len(payments),
	})
}

// ReviewPayment handles PATCH /subscriptions/payments/{id}
func (c *HTTPSubscriptionController) ReviewPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	payment, err := c.subscriptionService.ReviewPayment(r.Context(), id, model.SubscriptionStatus(req.Status))
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, payment)
}

// CreatePaymentLink handles POST /subscriptions/payments/{id}/link
func (c *HTTPSubscriptionController) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	link, err := c.subscriptionService.CreatePaymentLink(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendCreated(w, r, link)
}
