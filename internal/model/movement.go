package model

import (
	"time"

	"github.com/google/uuid"
)

type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement is one entry in the append-only stock ledger. Rows are
// never updated or deleted; the item's cached stock counter is adjusted
// in the same transaction that inserts the row.
type StockMovement struct {
	BaseModel
	ItemID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"item_id"`
	Item           *Item        `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	QuantityChange int          `gorm:"not null" json:"quantity_change"` // signed: IN positive, OUT negative
	MovementType   MovementType `gorm:"type:varchar(10);not null" json:"movement_type"`
	Memo           string       `json:"memo"`
}

// SignMatchesType reports whether the signed quantity agrees with the
// movement type. The writer enforces this, not the store.
func (m *StockMovement) SignMatchesType() bool {
	switch m.MovementType {
	case MovementIn:
		return m.QuantityChange > 0
	case MovementOut:
		return m.QuantityChange < 0
	}
	return false
}

// MovementRow is the admin history projection: ledger columns joined
// with the item name and acting username, newest first.
type MovementRow struct {
	ID             uuid.UUID    `json:"id"`
	ItemID         uuid.UUID    `json:"item_id"`
	UserID         uuid.UUID    `json:"user_id"`
	QuantityChange int          `json:"quantity_change"`
	MovementType   MovementType `json:"movement_type"`
	Memo           string       `json:"memo"`
	CreatedAt      time.Time    `json:"created_at"`
	ItemName       *string      `json:"item_name"`
	Username       *string      `json:"user_name"`
}
