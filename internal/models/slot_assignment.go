package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotAssignment places a quantity of a product at a warehouse/aisle/bin
// with a stock status. ReceiptID is an optional traceability link back to
// the goods receipt that brought the stock in.
type SlotAssignment struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	ProductID    uuid.UUID  `json:"product_id" db:"product_id"`
	ReceiptID    *uuid.UUID `json:"receipt_id" db:"receipt_id"`
	WarehouseID  uuid.UUID  `json:"warehouse_id" db:"warehouse_id"`
	AisleID      uuid.UUID  `json:"aisle_id" db:"aisle_id"`
	BinID        uuid.UUID  `json:"bin_id" db:"bin_id"`
	Quantity     int        `json:"quantity" db:"quantity"`
	RegisteredAt time.Time  `json:"registered_at" db:"registered_at"`
	RegisteredBy uuid.UUID  `json:"registered_by" db:"registered_by"`
	StatusID     uuid.UUID  `json:"status_id" db:"status_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// SlotAssignmentView is a slot assignment joined to its display names, used
// by listings, reports and the dashboard.
type SlotAssignmentView struct {
	SlotAssignment
	ProductName   string `json:"product_name" db:"product_name"`
	ProductCode   string `json:"product_code" db:"product_code"`
	WarehouseName string `json:"warehouse_name" db:"warehouse_name"`
	AisleName     string `json:"aisle_name" db:"aisle_name"`
	BinName       string `json:"bin_name" db:"bin_name"`
	StatusDesc    string `json:"status_description" db:"status_description"`
	StatusColor   string `json:"status_color" db:"status_color"`
}
