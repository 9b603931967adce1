package handlers

import (
	"fmt"
	"net/http"
	"time"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandlers handles CSV report export HTTP requests
type ReportHandlers struct {
	reportService services.ReportService
}

func NewReportHandlers(reportService services.ReportService) *ReportHandlers {
	return &ReportHandlers{
		reportService: reportService,
	}
}

// StockReportRequest represents query parameters for the stock report
type StockReportRequest struct {
	ProductID   string `query:"product_id"`
	WarehouseID string `query:"warehouse_id"`
	DateStart   string `query:"date_start"`
	DateEnd     string `query:"date_end"`
}

// ReceiptReportRequest represents query parameters for the receipt report
type ReceiptReportRequest struct {
	DateStart string `query:"date_start"`
	DateEnd   string `query:"date_end"`
}

func parseReportDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &t, nil
}

// StockReport streams the stock-position report as a CSV download
func (h *ReportHandlers) StockReport(c echo.Context) error {
	ctx := c.Request().Context()

	var req StockReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	filter := &models.StockReportFilter{}

	if req.ProductID != "" {
		productID, err := common.ValidateUUID(req.ProductID, "product ID")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.ProductID = &productID
	}
	if req.WarehouseID != "" {
		warehouseID, err := common.ValidateUUID(req.WarehouseID, "warehouse ID")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.WarehouseID = &warehouseID
	}

	dateStart, err := parseReportDate(req.DateStart)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filter.DateStart = dateStart

	dateEnd, err := parseReportDate(req.DateEnd)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filter.DateEnd = dateEnd

	data, filename, err := h.reportService.StockReportCSV(ctx, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate stock report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}

// ReceiptReport streams the receipt-history report as a CSV download
func (h *ReportHandlers) ReceiptReport(c echo.Context) error {
	ctx := c.Request().Context()

	var req ReceiptReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	filter := &models.ReceiptReportFilter{}

	dateStart, err := parseReportDate(req.DateStart)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filter.DateStart = dateStart

	dateEnd, err := parseReportDate(req.DateEnd)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filter.DateEnd = dateEnd

	data, filename, err := h.reportService.ReceiptReportCSV(ctx, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate receipt report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}
