package model

// Category is a lookup dimension for items. Never mutated by the app;
// rows are seeded or managed out-of-band.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// Supplier is a lookup dimension for items, managed out-of-band like Category.
type Supplier struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
