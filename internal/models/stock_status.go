package models

import (
	"time"

	"github.com/google/uuid"
)

// StockStatus is a labeled, color-coded state applied to slot assignments
// (e.g. available, damaged).
type StockStatus struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	Color       string    `json:"color" db:"color"` // hex string, e.g. #10b981
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
