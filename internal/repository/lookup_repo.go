package repository

import (
	"cafe-inventory/internal/model"

	"gorm.io/gorm"
)

// LookupRepository serves the category and supplier pickers on the
// listing view. Both dimensions are read-only for the application.
type LookupRepository interface {
	Categories() ([]model.Category, error)
	Suppliers() ([]model.Supplier, error)
}

type lookupRepo struct {
	db *gorm.DB
}

func NewLookupRepo(db *gorm.DB) LookupRepository {
	return &lookupRepo{db}
}

func (r *lookupRepo) Categories() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *lookupRepo) Suppliers() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("name").Find(&suppliers).Error
	return suppliers, err
}
