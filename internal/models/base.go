package models

import (
	"time"

	"monthbook/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the id and timestamp columns shared by id-keyed tables.
// Rows are hard-deleted: the ledger keeps no history beyond the current row.
type Base struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for records created without an id
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
