package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluecart/logistics-api/internal/core/domain"
	"github.com/bluecart/logistics-api/internal/core/ports"
)

// HubHandler handles HTTP requests for hub operations.
type HubHandler struct {
	service ports.HubService
}

func NewHubHandler(service ports.HubService) *HubHandler {
	return &HubHandler{service: service}
}

type createHubRequest struct {
	Name     string `json:"name"     validate:"required"`
	Code     string `json:"code"     validate:"required"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone"`
}

type updateHubRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Pincode  *string `json:"pincode"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
	Manager  *string `json:"manager"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"   validate:"omitempty,oneof=active inactive maintenance"`
}

type hubResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	Capacity    int       `json:"capacity"`
	CurrentLoad int       `json:"current_load"`
	Utilization float64   `json:"utilization"`
	Level       string    `json:"capacity_level"`
	Manager     string    `json:"manager"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type hubAssignmentResponse struct {
	Hub         hubResponse `json:"hub"`
	Utilization float64     `json:"utilization"`
	Level       string      `json:"level"`
}

func toHubResponse(h *domain.Hub) hubResponse {
	return hubResponse{
		ID:          h.ID,
		Name:        h.Name,
		Code:        h.Code,
		Address:     h.Address,
		City:        h.City,
		State:       h.State,
		Pincode:     h.Pincode,
		Capacity:    h.Capacity,
		CurrentLoad: h.CurrentLoad,
		Utilization: h.Utilization(),
		Level:       string(h.CapacityLevel()),
		Manager:     h.Manager,
		Phone:       h.Phone,
		Status:      string(h.Status),
		CreatedAt:   h.CreatedAt.UTC(),
		UpdatedAt:   h.UpdatedAt.UTC(),
	}
}

// Create handles POST /v1/hubs.
//
// @Summary      Register a hub
// @Tags         hubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHubRequest  true  "Hub details"
// @Success      201   {object}  hubResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/hubs [post]
func (h *HubHandler) Create(c echo.Context) error {
	var req createHubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	hub, err := h.service.CreateHub(c.Request().Context(), ports.CreateHubInput{
		Name:     req.Name,
		Code:     req.Code,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Pincode:  req.Pincode,
		Capacity: req.Capacity,
		Manager:  req.Manager,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toHubResponse(hub))
}

// Get handles GET /v1/hubs/:id.
//
// @Summary      Get a hub
// @Tags         hubs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hub id"
// @Success      200  {object}  hubResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/hubs/{id} [get]
func (h *HubHandler) Get(c echo.Context) error {
	hub, err := h.service.GetHub(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHubResponse(hub))
}

// List handles GET /v1/hubs.
//
// @Summary      List hubs
// @Tags         hubs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   hubResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/hubs [get]
func (h *HubHandler) List(c echo.Context) error {
	hubs, err := h.service.ListHubs(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]hubResponse, len(hubs))
	for i, hub := range hubs {
		out[i] = toHubResponse(hub)
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PATCH /v1/hubs/:id.
//
// @Summary      Patch a hub
// @Tags         hubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Hub id"
// @Param        body  body      updateHubRequest  true  "Fields to change"
// @Success      200   {object}  hubResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/hubs/{id} [patch]
func (h *HubHandler) Update(c echo.Context) error {
	var req updateHubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	hub, err := h.service.UpdateHub(c.Request().Context(), c.Param("id"), ports.UpdateHubInput{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Pincode:  req.Pincode,
		Capacity: req.Capacity,
		Manager:  req.Manager,
		Phone:    req.Phone,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHubResponse(hub))
}

// Delete handles DELETE /v1/hubs/:id.
//
// @Summary      Delete a hub
// @Tags         hubs
// @Security     BearerAuth
// @Param        id  path  string  true  "Hub id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/hubs/{id} [delete]
func (h *HubHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteHub(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign handles POST /v1/hubs/:id/shipments/:shipment_id — intake at a hub.
//
// @Summary      Assign a shipment to a hub
// @Tags         hubs
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Hub id"
// @Param        shipment_id  path      string  true  "Shipment id"
// @Success      200  {object}  hubAssignmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/hubs/{id}/shipments/{shipment_id} [post]
func (h *HubHandler) Assign(c echo.Context) error {
	result, err := h.service.AssignShipment(c.Request().Context(), c.Param("id"), c.Param("shipment_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hubAssignmentResponse{
		Hub:         toHubResponse(result.Hub),
		Utilization: result.Utilization,
		Level:       string(result.Level),
	})
}

// Release handles DELETE /v1/hubs/:id/shipments/:shipment_id — departure from a hub.
//
// @Summary      Release a shipment from a hub
// @Tags         hubs
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Hub id"
// @Param        shipment_id  path      string  true  "Shipment id"
// @Success      200  {object}  hubAssignmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/hubs/{id}/shipments/{shipment_id} [delete]
func (h *HubHandler) Release(c echo.Context) error {
	result, err := h.service.ReleaseShipment(c.Request().Context(), c.Param("id"), c.Param("shipment_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hubAssignmentResponse{
		Hub:         toHubResponse(result.Hub),
		Utilization: result.Utilization,
		Level:       string(result.Level),
	})
}
