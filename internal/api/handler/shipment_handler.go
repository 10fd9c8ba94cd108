package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluecart/logistics-api/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// Get handles GET /v1/shipments/:id.
//
// @Summary      Get a shipment by id
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shipment id"
// @Success      200  {object}  shipmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.service.GetShipment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Track handles GET /v1/track/:tracking_number — the public tracking lookup.
//
// @Summary      Track a shipment by tracking number
// @Tags         shipments
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. BC-00123456)"
// @Success      200              {object}  shipmentResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/track/{tracking_number} [get]
func (h *ShipmentHandler) Track(c echo.Context) error {
	shipment, err := h.service.TrackShipment(c.Request().Context(), c.Param("tracking_number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by lifecycle status"
// @Param        service_type  query     string  false  "Filter by service tier"
// @Param        hub_id        query     string  false  "Filter by current hub"
// @Param        assigned_to   query     string  false  "Filter by assigned driver"
// @Param        search        query     string  false  "Partial match on tracking number or party names"
// @Param        date_from     query     string  false  "created_at lower bound (RFC3339)"
// @Param        date_to       query     string  false  "created_at upper bound (RFC3339)"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200  {object}  listShipmentsResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	filter := ports.ListShipmentsFilter{
		Status:      c.QueryParam("status"),
		ServiceType: c.QueryParam("service_type"),
		HubID:       c.QueryParam("hub_id"),
		AssignedTo:  c.QueryParam("assigned_to"),
		Search:      c.QueryParam("search"),
	}
	if v := c.QueryParam("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.DateFrom = t
		}
	}
	if v := c.QueryParam("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.DateTo = t
		}
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListShipments(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Update handles PATCH /v1/shipments/:id.
//
// @Summary      Patch a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Shipment id"
// @Param        body  body      updateShipmentRequest  true  "Fields to change"
// @Success      200   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/shipments/{id} [patch]
func (h *ShipmentHandler) Update(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := h.service.UpdateShipment(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Delete handles DELETE /v1/shipments/:id.
//
// @Summary      Delete a shipment
// @Tags         shipments
// @Security     BearerAuth
// @Param        id  path  string  true  "Shipment id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteShipment(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RecordEvent handles POST /v1/shipments/:id/events.
//
// @Summary      Append a timeline event
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Shipment id"
// @Param        body  body      recordEventRequest  true  "Event details"
// @Success      200   {object}  shipmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments/{id}/events [post]
func (h *ShipmentHandler) RecordEvent(c echo.Context) error {
	var req recordEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := h.service.RecordEvent(c.Request().Context(), c.Param("id"), ports.RecordEventInput{
		Status:      req.Status,
		Location:    req.Location,
		Description: req.Description,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Quote handles GET /v1/shipments/quote — price preview before creation.
//
// @Summary      Quote shipping cost
// @Tags         shipments
// @Produce      json
// @Param        weight        query     number  true  "Package weight"
// @Param        service_type  query     string  true  "Service tier"
// @Success      200  {object}  quoteResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/shipments/quote [get]
func (h *ShipmentHandler) Quote(c echo.Context) error {
	weight, err := strconv.ParseFloat(c.QueryParam("weight"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "weight must be a number")
	}

	quote, err := h.service.Quote(c.Request().Context(), weight, c.QueryParam("service_type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quoteResponse{
		Weight:      quote.Weight,
		ServiceType: quote.ServiceType,
		Pricing: pricingResponse{
			BasePrice: quote.Pricing.BasePrice,
			Tax:       quote.Pricing.Tax,
			Total:     quote.Pricing.Total,
		},
	})
}
