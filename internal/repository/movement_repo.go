package repository

import (
	"cafe-inventory/internal/model"

	"gorm.io/gorm"
)

type MovementRepository interface {
	Create(tx *gorm.DB, movement *model.StockMovement) error
	ListHistory() ([]model.MovementRow, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

// Create menerima *gorm.DB (tx): sebuah ledger insert selalu satu
// transaksi dengan update stock item-nya
func (r *movementRepo) Create(tx *gorm.DB, movement *model.StockMovement) error {
	return tx.Create(movement).Error
}

// ListHistory returns every ledger entry joined with the item name and
// acting username, most recent first. Soft-deleted items keep their
// history; the LEFT JOIN tolerates dangling names either way.
func (r *movementRepo) ListHistory() ([]model.MovementRow, error) {
	var rows []model.MovementRow
	err := r.db.Table("stock_movements").
		Select("stock_movements.id, stock_movements.item_id, stock_movements.user_id, stock_movements.quantity_change, stock_movements.movement_type, stock_movements.memo, stock_movements.created_at, items.name AS item_name, users.username AS username").
		Joins("LEFT JOIN items ON stock_movements.item_id = items.id").
		Joins("LEFT JOIN users ON stock_movements.user_id = users.id").
		Order("stock_movements.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
