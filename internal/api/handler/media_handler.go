package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/ports"
)

// MediaHandler issues presigned upload URLs and lists stored media.
type MediaHandler struct {
	service ports.MediaService
}

func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// SignUpload handles POST /api/mediaUploader.
//
// @Summary      Get a presigned upload URL
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signUploadRequest  true  "Filename and content type"
// @Success      201   {object}  ports.UploadTicket
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/mediaUploader [post]
func (h *MediaHandler) SignUpload(c echo.Context) error {
	var req signUploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.SignUpload(c.Request().Context(), req.Filename, req.ContentType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ticket)
}

// List handles GET /api/mediaDownloader.
//
// @Summary      List stored media objects
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  mediaListResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/mediaDownloader [get]
func (h *MediaHandler) List(c echo.Context) error {
	files, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	if files == nil {
		files = []ports.MediaObject{}
	}
	return c.JSON(http.StatusOK, mediaListResponse{Files: files, Count: len(files)})
}
