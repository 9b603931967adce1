package models

import (
	"time"

	"github.com/google/uuid"
)

// Packaging describes a handling unit and its conversion factor to the
// product's base unit of measure.
type Packaging struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	ConversionFactor float64   `json:"conversion_factor" db:"conversion_factor"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
