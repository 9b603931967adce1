package handlers

import (
	"net/http"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// AisleHandlers handles aisle HTTP requests
type AisleHandlers struct {
	locationService services.LocationService
}

func NewAisleHandlers(locationService services.LocationService) *AisleHandlers {
	return &AisleHandlers{
		locationService: locationService,
	}
}

// ListAisles handles listing aisles
func (h *AisleHandlers) ListAisles(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	aisles, err := h.locationService.ListAisles(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list aisles")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"aisles": aisles,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateAisleRequest represents the aisle creation payload
type CreateAisleRequest struct {
	Name        string `json:"name" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
}

// CreateAisle handles creating a new aisle
func (h *AisleHandlers) CreateAisle(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateAisleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	warehouseID, err := common.ValidateUUID(req.WarehouseID, "warehouse ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	aisle := &models.Aisle{
		Name:        req.Name,
		WarehouseID: warehouseID,
	}

	if err := h.locationService.CreateAisle(ctx, aisle); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, aisle)
}

// GetAisle handles getting aisle details by ID
func (h *AisleHandlers) GetAisle(c echo.Context) error {
	ctx := c.Request().Context()

	aisleID, err := common.ValidateUUID(c.Param("id"), "aisle ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	aisle, err := h.locationService.GetAisle(ctx, aisleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Aisle not found")
	}

	return c.JSON(http.StatusOK, aisle)
}

// UpdateAisleRequest represents the aisle update payload
type UpdateAisleRequest struct {
	Name        *string `json:"name"`
	WarehouseID *string `json:"warehouse_id"`
}

// UpdateAisle handles updating aisle details
func (h *AisleHandlers) UpdateAisle(c echo.Context) error {
	ctx := c.Request().Context()

	aisleID, err := common.ValidateUUID(c.Param("id"), "aisle ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateAisleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	aisle, err := h.locationService.GetAisle(ctx, aisleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Aisle not found")
	}

	if req.Name != nil {
		aisle.Name = *req.Name
	}
	if req.WarehouseID != nil {
		warehouseID, err := common.ValidateUUID(*req.WarehouseID, "warehouse ID")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		aisle.WarehouseID = warehouseID
	}

	if err := h.locationService.UpdateAisle(ctx, aisle); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, aisle)
}

// ListAisleBins handles listing the bins of an aisle
func (h *AisleHandlers) ListAisleBins(c echo.Context) error {
	ctx := c.Request().Context()

	aisleID, err := common.ValidateUUID(c.Param("id"), "aisle ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bins, err := h.locationService.BinsByAisle(ctx, aisleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bins": bins,
	})
}
