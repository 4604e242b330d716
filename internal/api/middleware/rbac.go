package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendly/auction-api/internal/core/domain"
)

// RBAC enforces role-based access on the user resolved by Auth. It must be
// registered after Auth on the same route.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(userContextKey).(*domain.User)
			if !ok || user == nil {
				return domain.ErrInvalidCredentials
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
