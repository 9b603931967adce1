package handlers

import (
	"net/http"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// StockStatusHandlers handles stock status HTTP requests
type StockStatusHandlers struct {
	stockStatusService services.StockStatusService
}

func NewStockStatusHandlers(stockStatusService services.StockStatusService) *StockStatusHandlers {
	return &StockStatusHandlers{
		stockStatusService: stockStatusService,
	}
}

// ListStockStatuses handles listing stock statuses
func (h *StockStatusHandlers) ListStockStatuses(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	statuses, err := h.stockStatusService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list stock statuses")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"stock_statuses": statuses,
		"limit":          limit,
		"offset":         offset,
	})
}

// CreateStockStatusRequest represents the stock status creation payload
type CreateStockStatusRequest struct {
	Description string `json:"description" validate:"required"`
	Color       string `json:"color"`
}

// CreateStockStatus handles creating a new stock status
func (h *StockStatusHandlers) CreateStockStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateStockStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	status := &models.StockStatus{
		Description: req.Description,
		Color:       req.Color,
	}

	if err := h.stockStatusService.Create(ctx, status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, status)
}

// GetStockStatus handles getting stock status details by ID
func (h *StockStatusHandlers) GetStockStatus(c echo.Context) error {
	ctx := c.Request().Context()

	statusID, err := common.ValidateUUID(c.Param("id"), "stock status ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.stockStatusService.GetByID(ctx, statusID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Stock status not found")
	}

	return c.JSON(http.StatusOK, status)
}

// UpdateStockStatusRequest represents the stock status update payload
type UpdateStockStatusRequest struct {
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// UpdateStockStatus handles updating stock status details
func (h *StockStatusHandlers) UpdateStockStatus(c echo.Context) error {
	ctx := c.Request().Context()

	statusID, err := common.ValidateUUID(c.Param("id"), "stock status ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateStockStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	status, err := h.stockStatusService.GetByID(ctx, statusID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Stock status not found")
	}

	if req.Description != nil {
		status.Description = *req.Description
	}
	if req.Color != nil {
		status.Color = *req.Color
	}

	if err := h.stockStatusService.Update(ctx, status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, status)
}
