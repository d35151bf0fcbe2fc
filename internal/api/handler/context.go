package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// sessionClaims reads the claims injected by the Auth middleware. A zero
// user id means the session has no local account behind it; callers that
// gate on identity must treat that case themselves. The premium check, for
// one, denies on it rather than erroring.
func sessionClaims(c echo.Context) (userID int64, role domain.Role) {
	userID, _ = c.Get("user_id").(int64)
	raw, _ := c.Get("role").(string)
	return userID, domain.Role(raw)
}
