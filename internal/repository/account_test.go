package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return db, mock
}

func accountRow(accountNo string, balance int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"account_no", "name", "age", "dob", "email", "pin", "balance"}).
		AddRow(accountNo, "Arya", 30, "1995-04-01", "arya@example.com", "1234", balance)
}

func TestAccountRepository_FindByAccountNo(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_no = (.+)`).
			WillReturnRows(accountRow("ABC123!", 500))

		account, err := repo.FindByAccountNo(ctx, "ABC123!")

		assert.NoError(t, err)
		assert.Equal(t, "ABC123!", account.AccountNo)
		assert.Equal(t, int64(500), account.Balance)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_no = (.+)`).
			WillReturnRows(sqlmock.NewRows([]string{"account_no"}))

		_, err := repo.FindByAccountNo(ctx, "ZZZ999!")

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit applies delta in one statement", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE account_no = (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_no = (.+)`).
			WillReturnRows(accountRow("ABC123!", 600))

		account, err := repo.AdjustBalance(ctx, "ABC123!", 100)

		assert.NoError(t, err)
		assert.Equal(t, int64(600), account.Balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guarded withdraw misses when balance is short", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE account_no = (.+) AND balance >= (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_no = (.+)`).
			WillReturnRows(accountRow("ABC123!", 20))

		_, err := repo.AdjustBalance(ctx, "ABC123!", -50)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("miss on an unknown account maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE account_no = (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE account_no = (.+)`).
			WillReturnRows(sqlmock.NewRows([]string{"account_no"}))

		_, err := repo.AdjustBalance(ctx, "ZZZ999!", 100)

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows maps to not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "accounts" WHERE account_no = (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(ctx, "ZZZ999!")

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}
