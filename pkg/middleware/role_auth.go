package middleware

import (
	"context"
	"net/http"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/pkg/errors"
)

// RoleAuthMiddleware checks if the authenticated admin has one of the
// required roles. The role claim is set by JWTAuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...model.AdminRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetAdminRole(r.Context())
			if !ok || role == "" {
				HandleError(w, r, errors.NewUnauthorizedError("Admin role not found"))
				return
			}

			hasPermission := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					hasPermission = true
					break
				}
			}

			if !hasPermission {
				HandleError(w, r, errors.NewForbiddenError("Insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin requires the full Admin role
func RequireAdmin(next http.Handler) http.Handler {
	return RoleAuthMiddleware(model.AdminRoleSuper)(next)
}

// RequireStaff allows Staff or Admin
func RequireStaff(next http.Handler) http.Handler {
	return RoleAuthMiddleware(model.AdminRoleStaff, model.AdminRoleSuper)(next)
}

// GetAdminRole extracts the admin role from context
func GetAdminRole(ctx context.Context) (model.AdminRole, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	if !ok {
		return "", false
	}
	return model.AdminRole(role), true
}
