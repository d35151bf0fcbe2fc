package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

// EventHandler handles calendar event CRUD.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /api/events.
//
// @Summary      Create a calendar event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event fields"
// @Success      201   {object}  createEventResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	in, err := bindEvent(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createEventResponse{ID: id})
}

// List handles GET /api/events.
//
// @Summary      List calendar events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	if events == nil {
		events = []domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// Update handles PUT /api/events/:id.
//
// @Summary      Update a calendar event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Event id"
// @Param        body  body      eventRequest  true  "Event fields"
// @Success      200   {object}  updatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	in, err := bindEvent(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, in); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updatedResponse{Message: "event updated"})
}

// Delete handles DELETE /api/events/:id.
//
// @Summary      Delete a calendar event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  updatedResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updatedResponse{Message: "event deleted"})
}

func bindEvent(c echo.Context) (ports.EventInput, error) {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func eventID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}
	return id, nil
}
