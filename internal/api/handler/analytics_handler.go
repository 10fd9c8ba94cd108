package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bluecart/logistics-api/internal/core/ports"
)

// AnalyticsHandler serves the computed dashboard snapshot.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Dashboard handles GET /v1/analytics/dashboard.
//
// @Summary      Dashboard KPI snapshot
// @Description  Computed per request from current entity state; never cached or persisted.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSnapshot
// @Failure      503  {object}  errorResponse
// @Router       /v1/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	snapshot, err := h.service.DashboardSnapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}
