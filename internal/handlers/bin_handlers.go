package handlers

import (
	"net/http"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// BinHandlers handles bin HTTP requests
type BinHandlers struct {
	locationService services.LocationService
}

func NewBinHandlers(locationService services.LocationService) *BinHandlers {
	return &BinHandlers{
		locationService: locationService,
	}
}

// ListBins handles listing bins
func (h *BinHandlers) ListBins(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	bins, err := h.locationService.ListBins(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list bins")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bins":   bins,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateBinRequest represents the bin creation payload
type CreateBinRequest struct {
	Name    string `json:"name" validate:"required"`
	AisleID string `json:"aisle_id" validate:"required"`
}

// CreateBin handles creating a new bin
func (h *BinHandlers) CreateBin(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateBinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	aisleID, err := common.ValidateUUID(req.AisleID, "aisle ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bin := &models.Bin{
		Name:    req.Name,
		AisleID: aisleID,
	}

	if err := h.locationService.CreateBin(ctx, bin); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, bin)
}

// GetBin handles getting bin details by ID
func (h *BinHandlers) GetBin(c echo.Context) error {
	ctx := c.Request().Context()

	binID, err := common.ValidateUUID(c.Param("id"), "bin ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bin, err := h.locationService.GetBin(ctx, binID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Bin not found")
	}

	return c.JSON(http.StatusOK, bin)
}

// UpdateBinRequest represents the bin update payload
type UpdateBinRequest struct {
	Name    *string `json:"name"`
	AisleID *string `json:"aisle_id"`
}

// UpdateBin handles updating bin details
func (h *BinHandlers) UpdateBin(c echo.Context) error {
	ctx := c.Request().Context()

	binID, err := common.ValidateUUID(c.Param("id"), "bin ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateBinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	bin, err := h.locationService.GetBin(ctx, binID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Bin not found")
	}

	if req.Name != nil {
		bin.Name = *req.Name
	}
	if req.AisleID != nil {
		aisleID, err := common.ValidateUUID(*req.AisleID, "aisle ID")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		bin.AisleID = aisleID
	}

	if err := h.locationService.UpdateBin(ctx, bin); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, bin)
}
