package http

import (
	"net/http"

	"omnibook-admin/internal/application/services"
	"omnibook-admin/pkg/middleware"
	"omnibook-admin/pkg/response"
)

// HTTPUserController handles the customer listing endpoints
type HTTPUserController struct {
	userService *services.UserService
}

// NewHTTPUserController creates a new user controller
func NewHTTPUserController(userService *services.UserService) *HTTPUserController {
	return &HTTPUserController{userService: userService}
}

// ListUsers handles GET /users
func (c *HTTPUserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.ListUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		middleware.HandleError(w, r, middleware.UpstreamErrorHandler(err))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}
