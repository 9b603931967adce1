package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goods receipt statuses
const (
	ReceiptStatusPending   = "Pending"
	ReceiptStatusProcessed = "Processed"
	ReceiptStatusCancelled = "Cancelled"
)

// GoodsReceipt is an incoming-invoice header. Its line set lives in
// goods_receipt_lines and is fully replaced whenever the header is updated.
type GoodsReceipt struct {
	ID            uuid.UUID `json:"id" db:"id"`
	InvoiceNumber string    `json:"invoice_number" db:"invoice_number"`
	ReceiptDate   time.Time `json:"receipt_date" db:"receipt_date"`
	Supplier      string    `json:"supplier" db:"supplier"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type GoodsReceiptLine struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	ReceiptID   uuid.UUID       `json:"receipt_id" db:"receipt_id"`
	ProductID   uuid.UUID       `json:"product_id" db:"product_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	PackagingID uuid.UUID       `json:"packaging_id" db:"packaging_id"`
	UnitValue   decimal.Decimal `json:"unit_value" db:"unit_value"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Total returns quantity times unit value for the line.
func (l *GoodsReceiptLine) Total() decimal.Decimal {
	return l.UnitValue.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func ValidReceiptStatus(status string) bool {
	switch status {
	case ReceiptStatusPending, ReceiptStatusProcessed, ReceiptStatusCancelled:
		return true
	}
	return false
}
