package http

import (
	"encoding/json"
	"net/http"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"
)

// HTTPAuthController handles operator login
type HTTPAuthController struct {
	authService *services.AuthService
}

// NewHTTPAuthController creates a new auth controller
func NewHTTPAuthController(authService *services.AuthService) *HTTPAuthController {
	return &HTTPAuthController{authService: authService}
}

// Login handles POST /auth/login
func (c *HTTPAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	result, err := c.authService.Login(r.Context(), &req)
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, result)
}
