package handlers

import (
	"net/http"

	"wms2/internal/dashboard"

	"github.com/labstack/echo/v4"
)

// DashboardHandlers handles dashboard HTTP requests
type DashboardHandlers struct {
	dashboardService dashboard.Service
}

func NewDashboardHandlers(dashboardService dashboard.Service) *DashboardHandlers {
	return &DashboardHandlers{
		dashboardService: dashboardService,
	}
}

// GetSummary handles getting the dashboard aggregates
func (h *DashboardHandlers) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.dashboardService.Summary(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute dashboard summary")
	}

	return c.JSON(http.StatusOK, summary)
}
