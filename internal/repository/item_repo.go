package repository

import (
	"cafe-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(tx *gorm.DB, item *model.Item) error
	FindByID(id uuid.UUID) (*model.Item, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Item, error)
	ListActive() ([]model.ItemRow, error)
	AdjustStock(tx *gorm.DB, id uuid.UUID, delta int) error
	Deactivate(id uuid.UUID) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

// Create menerima *gorm.DB (tx) agar pembuatan item bisa berjalan dalam
// transaksi bersama opening movement-nya
func (r *itemRepo) Create(tx *gorm.DB, item *model.Item) error {
	return tx.Create(item).Error
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate locks the item row for the remainder of the
// transaction so concurrent stock adjustments serialize on it.
func (r *itemRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListActive returns active items joined with their category and supplier
// names, ordered by category name then item name. Postgres sorts NULL
// category names last in ASC order, so uncategorized items trail the list.
func (r *itemRepo) ListActive() ([]model.ItemRow, error) {
	var rows []model.ItemRow
	err := r.db.Table("items").
		Select("items.id, items.name, items.unit, items.stock, items.threshold, categories.name AS category_name, suppliers.name AS supplier_name").
		Joins("LEFT JOIN categories ON items.category_id = categories.id").
		Joins("LEFT JOIN suppliers ON items.supplier_id = suppliers.id").
		Where("items.is_active = ?", true).
		Order("categories.name ASC, items.name ASC").
		Scan(&rows).Error
	return rows, err
}

// AdjustStock menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
// yang sama dengan insert ledger
func (r *itemRepo) AdjustStock(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Item{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

// Deactivate flips is_active off. Already-inactive items update zero
// rows, which still succeeds: the operation is idempotent.
func (r *itemRepo) Deactivate(id uuid.UUID) error {
	return r.db.Model(&model.Item{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false).Error
}
