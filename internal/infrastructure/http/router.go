package http

import (
	"net/http"
	"time"

	jwtutil "omnibook-admin/pkg/jwt"
	"omnibook-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// Controllers bundles every HTTP controller the router mounts.
type Controllers struct {
	Auth         *HTTPAuthController
	Dashboard    *HTTPDashboardController
	Booking      *HTTPBookingController
	Host         *HTTPHostController
	User         *HTTPUserController
	Coupon       *HTTPCouponController
	Subscription *HTTPSubscriptionController
	Notification *HTTPNotificationController
	Export       *HTTPExportController
}

const (
	requestTimeout  = 30 * time.Second
	rateLimitPerIP  = 120
	rateLimitWindow = time.Minute
)

// NewRouter wires the middleware chain and all routes. Everything except
// login and the health probe sits behind JWT authentication; mutating
// endpoints additionally require the full Admin role.
func NewRouter(c Controllers, jwtManager *jwtutil.JWTManager) http.Handler {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(rateLimitPerIP, rateLimitWindow)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.TimeoutMiddleware(requestTimeout))
	r.Use(limiter.Middleware)

	r.Get("/health", healthHandler)
	r.Post("/auth/login", c.Auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(jwtManager))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", c.Dashboard.GetOverview)
			r.Get("/dashboard/revenue-series", c.Dashboard.GetRevenueSeries)
			r.Get("/dashboard/top-properties", c.Dashboard.GetTopProperties)
			r.Get("/export/bookings", c.Export.ExportBookings)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", c.Booking.ListBookings)
			r.Get("/{id}", c.Booking.GetBooking)
			r.With(middleware.RequireAdmin).Patch("/{id}/status", c.Booking.UpdateStatus)
			r.With(middleware.RequireAdmin).Delete("/{id}", c.Booking.DeleteBooking)
		})

		r.Route("/hosts", func(r chi.Router) {
			r.Get("/", c.Host.ListHosts)
			r.Get("/{id}/properties", c.Host.GetHostProperties)
			r.With(middleware.RequireAdmin).Patch("/{id}/status", c.Host.UpdateStatus)
		})

		r.Get("/users", c.User.ListUsers)

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", c.Coupon.ListCoupons)
			r.Get("/{id}", c.Coupon.GetCoupon)
			r.With(middleware.RequireAdmin).Post("/", c.Coupon.CreateCoupon)
			r.With(middleware.RequireAdmin).Patch("/{id}", c.Coupon.UpdateCoupon)
			r.With(middleware.RequireAdmin).Delete("/{id}", c.Coupon.DeleteCoupon)
		})

		r.Route("/subscriptions/payments", func(r chi.Router) {
			r.Get("/", c.Subscription.ListPayments)
			r.With(middleware.RequireAdmin).Patch("/{id}", c.Subscription.ReviewPayment)
			r.With(middleware.RequireAdmin).Post("/{id}/link", c.Subscription.CreatePaymentLink)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", c.Notification.ListNotifications)
			r.Patch("/{id}/read", c.Notification.MarkRead)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"omnibook-admin"}`))
}
