package handlers

import (
	"net/http"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// WarehouseHandlers handles warehouse HTTP requests
type WarehouseHandlers struct {
	warehouseService services.WarehouseService
	locationService  services.LocationService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService, locationService services.LocationService) *WarehouseHandlers {
	return &WarehouseHandlers{
		warehouseService: warehouseService,
		locationService:  locationService,
	}
}

// ListWarehouses handles listing warehouses
func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	warehouses, err := h.warehouseService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list warehouses")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouses": warehouses,
		"limit":      limit,
		"offset":     offset,
	})
}

// CreateWarehouseRequest represents the warehouse creation payload
type CreateWarehouseRequest struct {
	Name     string  `json:"name" validate:"required"`
	Location *string `json:"location"`
}

// CreateWarehouse handles creating a new warehouse
func (h *WarehouseHandlers) CreateWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	warehouse := &models.Warehouse{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := h.warehouseService.Create(ctx, warehouse); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, warehouse)
}

// GetWarehouse handles getting warehouse details by ID
func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	warehouseID, err := common.ValidateUUID(c.Param("id"), "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	warehouse, err := h.warehouseService.GetByID(ctx, warehouseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}

	return c.JSON(http.StatusOK, warehouse)
}

// UpdateWarehouseRequest represents the warehouse update payload
type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// UpdateWarehouse handles updating warehouse details
func (h *WarehouseHandlers) UpdateWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	warehouseID, err := common.ValidateUUID(c.Param("id"), "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	warehouse, err := h.warehouseService.GetByID(ctx, warehouseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}

	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Location != nil {
		warehouse.Location = req.Location
	}

	if err := h.warehouseService.Update(ctx, warehouse); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, warehouse)
}

// ListWarehouseAisles handles listing the aisles of a warehouse
func (h *WarehouseHandlers) ListWarehouseAisles(c echo.Context) error {
	ctx := c.Request().Context()

	warehouseID, err := common.ValidateUUID(c.Param("id"), "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	aisles, err := h.locationService.AislesByWarehouse(ctx, warehouseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"aisles": aisles,
	})
}
