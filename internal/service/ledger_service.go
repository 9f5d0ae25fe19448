package service

import (
	"errors"
	"fmt"

	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock actions accepted by the unified adjustment endpoint.
const (
	ActionIn  = "in"
	ActionOut = "out"
)

type LedgerService interface {
	RecordMovement(itemID, userID uuid.UUID, quantityChange int, movementType model.MovementType, memo string) error
	RecordAction(itemID, userID uuid.UUID, action string, quantity int, memo string) error
	ListMovements() ([]model.MovementRow, error)
}

type ledgerService struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	db           *gorm.DB
}

func NewLedgerService(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository, db *gorm.DB) LedgerService {
	return &ledgerService{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		db:           db,
	}
}

// RecordMovement appends one ledger entry and adjusts the item's cached
// stock counter as a single atomic unit of work. The item row is locked
// for the duration so concurrent movements against the same item
// serialize through the store. Stock may go negative; that is accepted
// business behavior, not an error.
func (s *ledgerService) RecordMovement(itemID, userID uuid.UUID, quantityChange int, movementType model.MovementType, memo string) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	movement := &model.StockMovement{
		ItemID:         itemID,
		UserID:         userID,
		QuantityChange: quantityChange,
		MovementType:   movementType,
		Memo:           memo,
	}
	if !movement.SignMatchesType() {
		return fmt.Errorf("%w: quantity change %d does not match movement type %s", ErrValidation, quantityChange, movementType)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := s.itemRepo.FindByIDForUpdate(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := s.movementRepo.Create(tx, movement); err != nil {
			return err
		}

		return s.itemRepo.AdjustStock(tx, item.ID, quantityChange)
	})
}

// RecordAction dispatches the unified endpoint's action field onto the
// ledger sign convention: "in" records +quantity/IN, "out" records
// -quantity/OUT. Anything else is rejected before any write.
func (s *ledgerService) RecordAction(itemID, userID uuid.UUID, action string, quantity int, memo string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	}

	switch action {
	case ActionIn:
		return s.RecordMovement(itemID, userID, quantity, model.MovementIn, memo)
	case ActionOut:
		return s.RecordMovement(itemID, userID, -quantity, model.MovementOut, memo)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

func (s *ledgerService) ListMovements() ([]model.MovementRow, error) {
	return s.movementRepo.ListHistory()
}
