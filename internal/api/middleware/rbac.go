package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// RequireCapability enforces capability-group access control. The caller's
// role is resolved to its capability group; the request proceeds only when
// that group is allowed.
func RequireCapability(allowed ...domain.Capability) echo.MiddlewareFunc {
	set := make(map[domain.Capability]struct{}, len(allowed))
	for _, group := range allowed {
		set[group] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := set[domain.Role(role).Capability()]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
