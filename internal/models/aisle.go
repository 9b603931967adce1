package models

import (
	"time"

	"github.com/google/uuid"
)

// Aisle is a corridor inside a warehouse. Bins hang off aisles.
type Aisle struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	WarehouseID uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
