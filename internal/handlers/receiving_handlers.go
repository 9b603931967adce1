package handlers

import (
	"net/http"
	"time"

	"wms2/internal/common"
	"wms2/internal/models"
	"wms2/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ReceivingHandlers handles goods receipt HTTP requests
type ReceivingHandlers struct {
	receivingService services.ReceivingService
}

func NewReceivingHandlers(receivingService services.ReceivingService) *ReceivingHandlers {
	return &ReceivingHandlers{
		receivingService: receivingService,
	}
}

// ReceiptLinePayload represents one line item in a receipt payload
type ReceiptLinePayload struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required"`
	PackagingID string          `json:"packaging_id" validate:"required"`
	UnitValue   decimal.Decimal `json:"unit_value"`
}

// ReceiptRequest represents the receipt create and update payload
type ReceiptRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required"`
	ReceiptDate   time.Time            `json:"receipt_date" validate:"required"`
	Supplier      string               `json:"supplier" validate:"required"`
	Status        string               `json:"status"`
	Lines         []ReceiptLinePayload `json:"lines"`
}

func (r *ReceiptRequest) toModels() (*models.GoodsReceipt, []*models.GoodsReceiptLine, error) {
	receipt := &models.GoodsReceipt{
		InvoiceNumber: r.InvoiceNumber,
		ReceiptDate:   r.ReceiptDate,
		Supplier:      r.Supplier,
		Status:        r.Status,
	}

	lines := make([]*models.GoodsReceiptLine, 0, len(r.Lines))
	for _, payload := range r.Lines {
		productID, err := common.ValidateUUID(payload.ProductID, "product ID")
		if err != nil {
			return nil, nil, err
		}
		packagingID, err := common.ValidateUUID(payload.PackagingID, "packaging ID")
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, &models.GoodsReceiptLine{
			ProductID:   productID,
			Quantity:    payload.Quantity,
			PackagingID: packagingID,
			UnitValue:   payload.UnitValue,
		})
	}
	return receipt, lines, nil
}

// ListReceipts handles listing goods receipts
func (h *ReceivingHandlers) ListReceipts(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	receipts, err := h.receivingService.List(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list receipts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"receipts": receipts,
		"limit":    limit,
		"offset":   offset,
	})
}

// CreateReceipt handles creating a goods receipt with its line items
func (h *ReceivingHandlers) CreateReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	var req ReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	receipt, lines, err := req.toModels()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.receivingService.Create(ctx, receipt, lines); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, services.NewGoodsReceiptWithLines(receipt, lines))
}

// GetReceipt handles getting a goods receipt with its line items
func (h *ReceivingHandlers) GetReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	receiptID, err := common.ValidateUUID(c.Param("id"), "receipt ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.receivingService.Get(ctx, receiptID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Receipt not found")
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateReceipt handles updating a goods receipt, replacing its line items
func (h *ReceivingHandlers) UpdateReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	receiptID, err := common.ValidateUUID(c.Param("id"), "receipt ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req ReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	receipt, lines, err := req.toModels()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	receipt.ID = receiptID

	if err := h.receivingService.Update(ctx, receipt, lines); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, services.NewGoodsReceiptWithLines(receipt, lines))
}

// UpdateReceiptStatusRequest represents the status change payload
type UpdateReceiptStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateReceiptStatus handles moving a receipt between statuses
func (h *ReceivingHandlers) UpdateReceiptStatus(c echo.Context) error {
	ctx := c.Request().Context()

	receiptID, err := common.ValidateUUID(c.Param("id"), "receipt ID")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateReceiptStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.receivingService.UpdateStatus(ctx, receiptID, req.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Receipt status updated",
	})
}
