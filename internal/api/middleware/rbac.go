package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailrelay/commerce-api/internal/core/domain"
)

// RBAC enforces role-based access control against the role attached by Auth.
// A missing role means Auth never ran, which is also a 403: authorization
// without authentication is never granted.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
