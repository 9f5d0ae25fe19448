package service

import (
	"fmt"

	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
	"cafe-inventory/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateItemInput is the shaped form input for a new catalogue item.
// Category and supplier are optional; empty means no reference, not a
// zero id.
type CreateItemInput struct {
	Name       string `validate:"required"`
	Unit       string `validate:"required"`
	Stock      int
	Threshold  int
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
}

type CatalogService interface {
	ListActiveItems() ([]model.ItemRow, error)
	ListCategories() ([]model.Category, error)
	ListSuppliers() ([]model.Supplier, error)
	CreateItem(input *CreateItemInput, actorID uuid.UUID) (*model.Item, error)
	DeactivateItem(id uuid.UUID) error
}

type catalogService struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	lookupRepo   repository.LookupRepository
	db           *gorm.DB
}

func NewCatalogService(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
	lookupRepo repository.LookupRepository,
	db *gorm.DB,
) CatalogService {
	return &catalogService{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		lookupRepo:   lookupRepo,
		db:           db,
	}
}

func (s *catalogService) ListActiveItems() ([]model.ItemRow, error) {
	return s.itemRepo.ListActive()
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.lookupRepo.Categories()
}

func (s *catalogService) ListSuppliers() ([]model.Supplier, error) {
	return s.lookupRepo.Suppliers()
}

// CreateItem validates and inserts a new active item. A non-zero initial
// stock is recorded as an opening ledger entry in the same transaction,
// so an item's stock reconciles against its movement history from the
// moment it exists.
func (s *catalogService) CreateItem(input *CreateItemInput, actorID uuid.UUID) (*model.Item, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	item := &model.Item{
		Name:       input.Name,
		Unit:       input.Unit,
		Stock:      input.Stock,
		Threshold:  input.Threshold,
		IsActive:   true,
		CategoryID: input.CategoryID,
		SupplierID: input.SupplierID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.itemRepo.Create(tx, item); err != nil {
			return err
		}

		if input.Stock == 0 {
			return nil
		}

		movementType := model.MovementIn
		if input.Stock < 0 {
			movementType = model.MovementOut
		}
		opening := &model.StockMovement{
			ItemID:         item.ID,
			UserID:         actorID,
			QuantityChange: input.Stock,
			MovementType:   movementType,
			Memo:           "opening balance",
		}
		return s.movementRepo.Create(tx, opening)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeactivateItem soft-deletes: the item disappears from the active
// listing while its ledger history stays intact. Deactivating an
// already-inactive (or unknown) item is a silent no-op.
func (s *catalogService) DeactivateItem(id uuid.UUID) error {
	return s.itemRepo.Deactivate(id)
}
