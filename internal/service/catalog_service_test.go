package service_test

import (
	"errors"
	"testing"

	"cafe-inventory/internal/repository"
	"cafe-inventory/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalog(db *gorm.DB) service.CatalogService {
	return service.NewCatalogService(
		repository.NewItemRepo(db),
		repository.NewMovementRepo(db),
		repository.NewLookupRepo(db),
		db,
	)
}

func TestCreateItem_RequiresNameAndUnit(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	catalog := newCatalog(db)
	actor := uuid.New()

	_, err := catalog.CreateItem(&service.CreateItemInput{Name: "", Unit: "kg"}, actor)
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = catalog.CreateItem(&service.CreateItemInput{Name: "Espresso Beans", Unit: ""}, actor)
	assert.ErrorIs(t, err, service.ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet(), "validation failures must not insert a row")
}

func TestCreateItem_ZeroStockSkipsOpeningMovement(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := newCatalog(db).CreateItem(&service.CreateItemInput{Name: "Oat Milk", Unit: "l"}, uuid.New())
	require.NoError(t, err)
	assert.True(t, item.IsActive)
	assert.Zero(t, item.Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateItem_InitialStockRecordsOpeningMovement(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := newCatalog(db).CreateItem(&service.CreateItemInput{
		Name:  "Croissant",
		Unit:  "pc",
		Stock: 12,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 12, item.Stock)
	assert.NoError(t, mock.ExpectationsWereMet(), "opening balance must land in the ledger with the item")
}

func TestCreateItem_RollsBackWhenOpeningMovementFails(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := newCatalog(db).CreateItem(&service.CreateItemInput{
		Name:  "Croissant",
		Unit:  "pc",
		Stock: 12,
	}, uuid.New())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateItem_IsIdempotent(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	id := uuid.New()

	// First deactivation flips the flag.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// Second run matches no rows and still succeeds.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	catalog := newCatalog(db)
	assert.NoError(t, catalog.DeactivateItem(id))
	assert.NoError(t, catalog.DeactivateItem(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
