package handlers

import (
	"net/http"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// PackagingHandlers handles packaging HTTP requests
type PackagingHandlers struct {
	packagingService services.PackagingService
}

func NewPackagingHandlers(packagingService services.PackagingService) *PackagingHandlers {
	return &PackagingHandlers{
		packagingService: packagingService,
	}
}

// ListPackagings handles listing packagings
func (h *PackagingHandlers) ListPackagings(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	packagings, err := h.packagingService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list packagings")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"packagings": packagings,
		"limit":      limit,
		"offset":     offset,
	})
}

// CreatePackagingRequest represents the packaging creation payload
type CreatePackagingRequest struct {
	Name             string  `json:"name" validate:"required"`
	ConversionFactor float64 `json:"conversion_factor" validate:"required"`
}

// CreatePackaging handles creating a new packaging
func (h *PackagingHandlers) CreatePackaging(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreatePackagingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	packaging := &models.Packaging{
		Name:             req.Name,
		ConversionFactor: req.ConversionFactor,
	}

	if err := h.packagingService.Create(ctx, packaging); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, packaging)
}

// GetPackaging handles getting packaging details by ID
func (h *PackagingHandlers) GetPackaging(c echo.Context) error {
	ctx := c.Request().Context()

	packagingID, err := common.ValidateUUID(c.Param("id"), "packaging ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	packaging, err := h.packagingService.GetByID(ctx, packagingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Packaging not found")
	}

	return c.JSON(http.StatusOK, packaging)
}

// UpdatePackagingRequest represents the packaging update payload
type UpdatePackagingRequest struct {
	Name             *string  `json:"name"`
	ConversionFactor *float64 `json:"conversion_factor"`
}

// UpdatePackaging handles updating packaging details
func (h *PackagingHandlers) UpdatePackaging(c echo.Context) error {
	ctx := c.Request().Context()

	packagingID, err := common.ValidateUUID(c.Param("id"), "packaging ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdatePackagingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	packaging, err := h.packagingService.GetByID(ctx, packagingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Packaging not found")
	}

	if req.Name != nil {
		packaging.Name = *req.Name
	}
	if req.ConversionFactor != nil {
		packaging.ConversionFactor = *req.ConversionFactor
	}

	if err := h.packagingService.Update(ctx, packaging); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, packaging)
}
