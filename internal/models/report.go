package models

import (
	"time"

	"github.com/google/uuid"
)

// Report kinds, used in export filenames
const (
	ReportKindStock    = "estoque"
	ReportKindReceipts = "recebimento"
)

// StockReportFilter narrows the stock-position report. Nil fields mean
// "no filter"; date bounds are inclusive.
type StockReportFilter struct {
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
	DateStart   *time.Time `json:"date_start,omitempty"`
	DateEnd     *time.Time `json:"date_end,omitempty"`
}

// ReceiptReportFilter narrows the receipt-history report.
type ReceiptReportFilter struct {
	DateStart *time.Time `json:"date_start,omitempty"`
	DateEnd   *time.Time `json:"date_end,omitempty"`
}
