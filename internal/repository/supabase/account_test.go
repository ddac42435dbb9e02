package supabase

import (
	"context"
	"testing"

	"github.com/aryadee/smart-bank/internal/mocks"
	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"github.com/aryadee/smart-bank/pkg/postgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func selectReturning(accounts ...model.Account) func(mock.Arguments) {
	return func(args mock.Arguments) {
		into := args.Get(4).(*[]model.Account)
		*into = accounts
	}
}

func TestAccountRepository_FindByAccountNo(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching row", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Select", ctx, "accounts",
			postgrest.Filters{"account_no": postgrest.Eq("ABC123!")}, "", mock.Anything).
			Run(selectReturning(model.Account{AccountNo: "ABC123!", Balance: 500})).
			Return(nil)

		account, err := repo.FindByAccountNo(ctx, "ABC123!")

		assert.NoError(t, err)
		assert.Equal(t, int64(500), account.Balance)
	})

	t.Run("empty result maps to not found", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Select", ctx, "accounts", mock.Anything, "", mock.Anything).
			Run(selectReturning()).
			Return(nil)

		_, err := repo.FindByAccountNo(ctx, "ZZZ999!")

		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict maps to account exists", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Insert", ctx, "accounts", mock.Anything, mock.Anything).
			Return(postgrest.ErrConflict)

		err := repo.Create(ctx, &model.Account{AccountNo: "ABC123!"})

		assert.ErrorIs(t, err, repository.ErrAccountExists)
	})

	t.Run("stamps creation time", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Insert", ctx, "accounts", mock.Anything, mock.Anything).Return(nil)

		account := model.Account{AccountNo: "ABC123!"}
		err := repo.Create(ctx, &account)

		assert.NoError(t, err)
		assert.False(t, account.CreatedAt.IsZero())
		assert.Equal(t, account.CreatedAt, account.UpdatedAt)
	})
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("applies delta with compare and set", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Select", ctx, "accounts", mock.Anything, "", mock.Anything).
			Run(selectReturning(model.Account{AccountNo: "ABC123!", Balance: 100})).
			Return(nil)
		client.On("Update", ctx, "accounts",
			postgrest.Filters{
				"account_no": postgrest.Eq("ABC123!"),
				"balance":    postgrest.Eq(int64(100)),
			}, mock.Anything).Return(1, nil)

		account, err := repo.AdjustBalance(ctx, "ABC123!", 50)

		assert.NoError(t, err)
		assert.Equal(t, int64(150), account.Balance)
	})

	t.Run("retries when the guarded update misses", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Select", ctx, "accounts", mock.Anything, "", mock.Anything).
			Run(selectReturning(model.Account{AccountNo: "ABC123!", Balance: 100})).
			Return(nil).Once()
		client.On("Update", ctx, "accounts", mock.Anything, mock.Anything).
			Return(0, nil).Once()

		client.On("Select", ctx, "accounts", mock.Anything, "", mock.Anything).
			Run(selectReturning(model.Account{AccountNo: "ABC123!", Balance: 80})).
			Return(nil).Once()
		client.On("Update", ctx, "accounts", mock.Anything, mock.Anything).
			Return(1, nil).Once()

		account, err := repo.AdjustBalance(ctx, "ABC123!", -30)

		assert.NoError(t, err)
		assert.Equal(t, int64(50), account.Balance)
		client.AssertExpectations(t)
	})

	t.Run("rejects overdraw before writing", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Select", ctx, "accounts", mock.Anything, "", mock.Anything).
			Run(selectReturning(model.Account{AccountNo: "ABC123!", Balance: 20})).
			Return(nil)

		_, err := repo.AdjustBalance(ctx, "ABC123!", -50)

		assert.ErrorIs(t, err, repository.ErrInsufficientBalance)
		client.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gives up after bounded contention", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Select", ctx, "accounts", mock.Anything, "", mock.Anything).
			Run(selectReturning(model.Account{AccountNo: "ABC123!", Balance: 100})).
			Return(nil)
		client.On("Update", ctx, "accounts", mock.Anything, mock.Anything).Return(0, nil)

		_, err := repo.AdjustBalance(ctx, "ABC123!", 10)

		assert.ErrorIs(t, err, ErrBalanceContention)
		client.AssertNumberOfCalls(t, "Update", casAttempts)
	})
}

func TestAccountRepository_UpdatePIN(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows maps to not found", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Update", ctx, "accounts", mock.Anything, mock.Anything).Return(0, nil)

		err := repo.UpdatePIN(ctx, "ZZZ999!", "4321")

		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}

func TestAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the matching row", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Delete", ctx, "accounts",
			postgrest.Filters{"account_no": postgrest.Eq("ABC123!")}).Return(1, nil)

		err := repo.Delete(ctx, "ABC123!")

		assert.NoError(t, err)
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		client := new(mocks.PostgrestClient)
		repo := NewAccountRepository(client)

		client.On("Delete", ctx, "accounts", mock.Anything).Return(0, nil)

		err := repo.Delete(ctx, "ZZZ999!")

		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}
