package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/ports"
)

// AccessHandler handles the premium-access gating check.
type AccessHandler struct {
	service ports.AccessService
}

func NewAccessHandler(service ports.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

// Check handles GET /api/premium-access/check. It never errors: the service
// degrades every failure to {hasAccess: false}.
//
// @Summary      Check premium access for the current session
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AccessResult
// @Router       /api/premium-access/check [get]
func (h *AccessHandler) Check(c echo.Context) error {
	userID, role := sessionClaims(c)
	result := h.service.Check(c.Request().Context(), userID, role)
	return c.JSON(http.StatusOK, result)
}
