package model

import "github.com/google/uuid"

type Item struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Unit      string `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
	Stock     int    `gorm:"not null" json:"stock"`
	Threshold int    `gorm:"not null" json:"threshold"` // reorder trigger, advisory only
	IsActive  bool   `gorm:"not null" json:"is_active"`

	// Relasi opsional ke lookup dimensions
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// ItemRow is the listing projection: item columns joined with the
// category and supplier names. Nil name means the reference is absent.
type ItemRow struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	Stock        int       `json:"stock"`
	Threshold    int       `json:"threshold"`
	CategoryName *string   `json:"category_name"`
	SupplierName *string   `json:"supplier_name"`
}
