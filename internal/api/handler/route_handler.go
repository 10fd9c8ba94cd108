package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

// RouteHandler handles HTTP requests for delivery route operations.
type RouteHandler struct {
	service ports.RouteService
}

func NewRouteHandler(service ports.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

type stopRequest struct {
	ShipmentID string `json:"shipment_id" validate:"required"`
	Address    string `json:"address"`
	Type       string `json:"type" validate:"required,oneof=pickup delivery"`
}

type createRouteRequest struct {
	Name        string        `json:"name"      validate:"required"`
	DriverID    string        `json:"driver_id" validate:"required"`
	HubID       string        `json:"hub_id"    validate:"required"`
	ShipmentIDs []string      `json:"shipment_ids"`
	Stops       []stopRequest `json:"stops" validate:"omitempty,dive"`
}

type reassignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required"`
}

type stopResponse struct {
	ShipmentID  string     `json:"shipment_id"`
	Address     string     `json:"address"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type routeResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	AssignedTo     string         `json:"assigned_to"`
	HubID          string         `json:"hub_id"`
	ShipmentIDs    []string       `json:"shipment_ids"`
	Stops          []stopResponse `json:"stops"`
	Status         string         `json:"status"`
	TotalStops     int            `json:"total_stops"`
	CompletedStops int            `json:"completed_stops"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func toRouteResponse(r *domain.Route) routeResponse {
	stops := make([]stopResponse, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = stopResponse{
			ShipmentID:  s.ShipmentID,
			Address:     s.Address,
			Type:        string(s.Type),
			Status:      string(s.Status),
			CompletedAt: s.CompletedAt,
		}
	}
	return routeResponse{
		ID:             r.ID,
		Name:           r.Name,
		AssignedTo:     r.AssignedTo,
		HubID:          r.HubID,
		ShipmentIDs:    r.ShipmentIDs,
		Stops:          stops,
		Status:         string(r.Status),
		TotalStops:     r.TotalStops,
		CompletedStops: r.CompletedStops,
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

// Create handles POST /v1/routes.
//
// @Summary      Plan a delivery route
// @Tags         routes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRouteRequest  true  "Route details"
// @Success      201   {object}  routeResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/routes [post]
func (h *RouteHandler) Create(c echo.Context) error {
	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	stops := make([]ports.StopInput, len(req.Stops))
	for i, s := range req.Stops {
		stops[i] = ports.StopInput{ShipmentID: s.ShipmentID, Address: s.Address, Type: s.Type}
	}

	route, err := h.service.CreateRoute(c.Request().Context(), ports.CreateRouteInput{
		Name:        req.Name,
		DriverID:    req.DriverID,
		HubID:       req.HubID,
		ShipmentIDs: req.ShipmentIDs,
		Stops:       stops,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRouteResponse(route))
}

// Get handles GET /v1/routes/:id.
//
// @Summary      Get a route
// @Tags         routes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Route id"
// @Success      200  {object}  routeResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/routes/{id} [get]
func (h *RouteHandler) Get(c echo.Context) error {
	route, err := h.service.GetRoute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteResponse(route))
}

// List handles GET /v1/routes.
//
// @Summary      List routes
// @Tags         routes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   routeResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/routes [get]
func (h *RouteHandler) List(c echo.Context) error {
	routes, err := h.service.ListRoutes(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]routeResponse, len(routes))
	for i, r := range routes {
		out[i] = toRouteResponse(r)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /v1/routes/:id.
//
// @Summary      Delete a route
// @Tags         routes
// @Security     BearerAuth
// @Param        id  path  string  true  "Route id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/routes/{id} [delete]
func (h *RouteHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteRoute(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdvanceStop handles POST /v1/routes/:id/stops/:index/complete.
//
// @Summary      Complete the next stop on a route
// @Tags         routes
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Route id"
// @Param        index  path      int     true  "Stop index (0-based)"
// @Success      200    {object}  routeResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/routes/{id}/stops/{index}/complete [post]
func (h *RouteHandler) AdvanceStop(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "stop index must be a number")
	}

	route, err := h.service.AdvanceStop(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteResponse(route))
}

// ReassignDriver handles PATCH /v1/routes/:id/driver.
//
// @Summary      Reassign the driver on a route
// @Tags         routes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Route id"
// @Param        body  body      reassignDriverRequest  true  "New driver"
// @Success      200   {object}  routeResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/routes/{id}/driver [patch]
func (h *RouteHandler) ReassignDriver(c echo.Context) error {
	var req reassignDriverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	route, err := h.service.ReassignDriver(c.Request().Context(), c.Param("id"), req.DriverID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteResponse(route))
}
