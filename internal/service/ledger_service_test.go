package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
	"cafe-inventory/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock, sqlDB
}

func newLedger(db *gorm.DB) service.LedgerService {
	return service.NewLedgerService(repository.NewItemRepo(db), repository.NewMovementRepo(db), db)
}

func itemRows(id uuid.UUID, stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "unit", "stock", "threshold", "is_active"}).
		AddRow(id, "Espresso Beans", "kg", stock, 5, true)
}

func TestRecordMovement_CommitsLedgerAndStockTogether(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	itemID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = .+ FOR UPDATE`).
		WithArgs(itemID, 1).
		WillReturnRows(itemRows(itemID, 10))
	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := newLedger(db).RecordMovement(itemID, userID, 5, model.MovementIn, "delivery")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordMovement_RollsBackWhenStockUpdateFails(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	itemID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = .+ FOR UPDATE`).
		WithArgs(itemID, 1).
		WillReturnRows(itemRows(itemID, 10))
	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "items" SET`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := newLedger(db).RecordMovement(itemID, uuid.New(), 5, model.MovementIn, "")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "ledger insert must not commit without the stock update")
}

func TestRecordMovement_RollsBackWhenLedgerInsertFails(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	itemID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = .+ FOR UPDATE`).
		WithArgs(itemID, 1).
		WillReturnRows(itemRows(itemID, 10))
	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := newLedger(db).RecordMovement(itemID, uuid.New(), -3, model.MovementOut, "")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordMovement_UnknownItem(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	itemID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = .+ FOR UPDATE`).
		WithArgs(itemID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := newLedger(db).RecordMovement(itemID, uuid.New(), 5, model.MovementIn, "")
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordMovement_RejectsSignTypeDisagreement(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ledger := newLedger(db)
	assert.ErrorIs(t, ledger.RecordMovement(uuid.New(), uuid.New(), -5, model.MovementIn, ""), service.ErrValidation)
	assert.ErrorIs(t, ledger.RecordMovement(uuid.New(), uuid.New(), 5, model.MovementOut, ""), service.ErrValidation)
	assert.ErrorIs(t, ledger.RecordMovement(uuid.New(), uuid.New(), 0, model.MovementIn, ""), service.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL may run for a rejected movement")
}

func TestRecordMovement_RequiresActor(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	err := newLedger(db).RecordMovement(uuid.New(), uuid.Nil, 5, model.MovementIn, "")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAction_DispatchesSignConvention(t *testing.T) {
	itemID := uuid.New()

	cases := []struct {
		name   string
		action string
		change int
		mtype  model.MovementType
	}{
		{"stock-in", service.ActionIn, 5, model.MovementIn},
		{"stock-out", service.ActionOut, -5, model.MovementOut},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, sqlDB := newMockDB(t)
			defer sqlDB.Close()

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = .+ FOR UPDATE`).
				WithArgs(itemID, 1).
				WillReturnRows(itemRows(itemID, 10))
			mock.ExpectExec(`INSERT INTO "stock_movements"`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`UPDATE "items" SET`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := newLedger(db).RecordAction(itemID, uuid.New(), tc.action, 5, "memo")
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordAction_RejectsWithoutWriting(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ledger := newLedger(db)

	assert.ErrorIs(t, ledger.RecordAction(uuid.New(), uuid.New(), "sideways", 5, ""), service.ErrInvalidAction)
	assert.ErrorIs(t, ledger.RecordAction(uuid.New(), uuid.New(), service.ActionIn, 0, ""), service.ErrValidation)
	assert.ErrorIs(t, ledger.RecordAction(uuid.New(), uuid.New(), service.ActionIn, -5, ""), service.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL may run for a rejected action")
}
