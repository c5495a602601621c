package http

import (
	"encoding/json"
	"net/http"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"

	"github.com/go-chi/chi/v5"
)

// HTTPCouponController handles the discount code endpoints
type HTTPCouponController struct {
	couponService *services.CouponService
}

// NewHTTPCouponController creates a new coupon controller
func NewHTTPCouponController(couponService *services.CouponService) *HTTPCouponController {
	return &HTTPCouponController{couponService: couponService}
}

// ListCoupons handles GET /coupons
func (c *HTTPCouponController) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := c.couponService.ListCoupons(r.Context())
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"coupons": coupons,
		"count":   len(coupons),
	})
}

// GetCoupon handles GET /coupons/{id}
func (c *HTTPCouponController) GetCoupon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	coupon, err := c.couponService.GetCoupon(r.Context(), id)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, coupon)
}

// CreateCoupon handles POST /coupons
func (c *HTTPCouponController) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req services.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	coupon, err := c.couponService.CreateCoupon(r.Context(), &req)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendCreated(w, r, coupon)
}

// UpdateCoupon handles PATCH /coupons/{id}
func (c *HTTPCouponController) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req services.UpdateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	coupon, err := c.couponService.UpdateCoupon(r.Context(), id, &req)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, coupon)
}

// DeleteCoupon handles DELETE /coupons/{id}
func (c *HTTPCouponController) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.couponService.DeleteCoupon(r.Context(), id); err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendNoContent(w, r)
}
