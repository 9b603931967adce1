package models

import (
	"time"

	"github.com/google/uuid"
)

// Bin is the smallest addressable storage position.
type Bin struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	AisleID   uuid.UUID `json:"aisle_id" db:"aisle_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
