package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aryadee/smart-bank/internal/constants"
	"github.com/aryadee/smart-bank/internal/mocks"
	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"github.com/aryadee/smart-bank/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLedgerService(t *testing.T, accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository, txManager repository.TxManager) service.LedgerService {
	t.Helper()
	svc, err := service.NewLedgerService(accountRepo, txRepo, txManager, testLedger, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestLedger_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies amount and records entry", func(t *testing.T) {
		accountRepo := &mocks.AccountRepository{}
		txRepo := &mocks.TransactionRepository{}
		txManager := &mocks.TxManager{}
		svc := newLedgerService(t, accountRepo, txRepo, txManager)

		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		accountRepo.On("AdjustBalance", ctx, "aBC123!", int64(500)).
			Return(model.Account{AccountNo: "aBC123!", Balance: 1500}, nil)
		txRepo.On("Create", ctx, mock.MatchedBy(func(tx *model.Transaction) bool {
			return tx.AccountNo == "aBC123!" &&
				tx.Type == model.TxTypeDeposit &&
				tx.Amount == 500 &&
				len(tx.Timestamp) == 19
		})).Return(nil)

		result, err := svc.Deposit(ctx, service.BalanceCommand{AccountNo: "aBC123!", Amount: 500})

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), result.Balance)
		txRepo.AssertExpectations(t)
	})

	t.Run("Rejects zero amount", func(t *testing.T) {
		accountRepo := &mocks.AccountRepository{}
		svc := newLedgerService(t, accountRepo, &mocks.TransactionRepository{}, &mocks.TxManager{})

		_, err := svc.Deposit(ctx, service.BalanceCommand{AccountNo: "aBC123!", Amount: 0})

		assertServiceError(t, err, constants.ErrCodeAmountOutOfRange)
		accountRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects amount above the cap", func(t *testing.T) {
		svc := newLedgerService(t, &mocks.AccountRepository{}, &mocks.TransactionRepository{}, &mocks.TxManager{})

		_, err := svc.Deposit(ctx, service.BalanceCommand{
			AccountNo: "aBC123!", Amount: testLedger.MaxDeposit + 1,
		})

		assertServiceError(t, err, constants.ErrCodeAmountOutOfRange)
	})
}

func TestLedger_Withdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies negative delta and records entry", func(t *testing.T) {
		accountRepo := &mocks.AccountRepository{}
		txRepo := &mocks.TransactionRepository{}
		txManager := &mocks.TxManager{}
		svc := newLedgerService(t, accountRepo, txRepo, txManager)

		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		accountRepo.On("AdjustBalance", ctx, "aBC123!", int64(-200)).
			Return(model.Account{AccountNo: "aBC123!", Balance: 800}, nil)
		txRepo.On("Create", ctx, mock.MatchedBy(func(tx *model.Transaction) bool {
			return tx.Type == model.TxTypeWithdraw && tx.Amount == 200
		})).Return(nil)

		result, err := svc.Withdraw(ctx, service.BalanceCommand{AccountNo: "aBC123!", Amount: 200})

		assert.NoError(t, err)
		assert.Equal(t, int64(800), result.Balance)
	})

	t.Run("Insufficient funds leaves no ledger entry", func(t *testing.T) {
		accountRepo := &mocks.AccountRepository{}
		txRepo := &mocks.TransactionRepository{}
		txManager := &mocks.TxManager{}
		svc := newLedgerService(t, accountRepo, txRepo, txManager)

		txManager.On("WithTx", ctx, mock.Anything).Return(nil)
		accountRepo.On("AdjustBalance", ctx, "aBC123!", int64(-5000)).
			Return(model.Account{}, repository.ErrInsufficientBalance)

		_, err := svc.Withdraw(ctx, service.BalanceCommand{AccountNo: "aBC123!", Amount: 5000})

		assertServiceError(t, err, constants.ErrCodeInsufficientBalance)
		txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects non-positive amount", func(t *testing.T) {
		svc := newLedgerService(t, &mocks.AccountRepository{}, &mocks.TransactionRepository{}, &mocks.TxManager{})

		_, err := svc.Withdraw(ctx, service.BalanceCommand{AccountNo: "aBC123!", Amount: -10})

		assertServiceError(t, err, constants.ErrCodeAmountOutOfRange)
	})
}

// inMemoryAccounts mimics the storage contract under concurrency: balance
// adjustment is a single guarded mutation, as the SQL backends do it with
// one conditional UPDATE.
type inMemoryAccounts struct {
	mu       sync.Mutex
	balances map[string]int64
}

func (s *inMemoryAccounts) AdjustBalance(ctx context.Context, accountNo string, delta int64) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.balances[accountNo]
	if !ok {
		return model.Account{}, repository.ErrAccountNotFound
	}
	if delta < 0 && balance < -delta {
		return model.Account{}, repository.ErrInsufficientBalance
	}

	balance += delta
	s.balances[accountNo] = balance
	return model.Account{AccountNo: accountNo, Balance: balance}, nil
}

func (s *inMemoryAccounts) Create(ctx context.Context, a *model.Account) error { return nil }
func (s *inMemoryAccounts) FindByAccountNo(ctx context.Context, accountNo string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	balance, ok := s.balances[accountNo]
	if !ok {
		return model.Account{}, repository.ErrAccountNotFound
	}
	return model.Account{AccountNo: accountNo, Balance: balance}, nil
}
func (s *inMemoryAccounts) FindByCredentials(ctx context.Context, accountNo, pin string) (model.Account, error) {
	return model.Account{}, repository.ErrAccountNotFound
}
func (s *inMemoryAccounts) FindByRecovery(ctx context.Context, email, dob string) (model.Account, error) {
	return model.Account{}, repository.ErrAccountNotFound
}
func (s *inMemoryAccounts) UpdateDetails(ctx context.Context, accountNo, name, email, pin string) error {
	return nil
}
func (s *inMemoryAccounts) UpdatePIN(ctx context.Context, accountNo, pin string) error { return nil }
func (s *inMemoryAccounts) Delete(ctx context.Context, accountNo string) error         { return nil }
func (s *inMemoryAccounts) List(ctx context.Context) ([]model.Account, error)          { return nil, nil }

type recordingTransactions struct {
	mu      sync.Mutex
	entries []model.Transaction
}

func (r *recordingTransactions) Create(ctx context.Context, tx *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *tx)
	return nil
}
func (r *recordingTransactions) ListByAccount(ctx context.Context, accountNo string) ([]model.Transaction, error) {
	return nil, nil
}
func (r *recordingTransactions) ListAll(ctx context.Context) ([]model.Transaction, error) {
	return nil, nil
}
func (r *recordingTransactions) DeleteByAccount(ctx context.Context, accountNo string) error {
	return nil
}

func TestLedger_ConcurrentDepositsKeepEveryUpdate(t *testing.T) {
	ctx := context.Background()

	accounts := &inMemoryAccounts{balances: map[string]int64{"aBC123!": 0}}
	transactions := &recordingTransactions{}
	svc := newLedgerService(t, accounts, transactions, repository.NewNoopTxManager())

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Deposit(ctx, service.BalanceCommand{AccountNo: "aBC123!", Amount: 10})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := accounts.FindByAccountNo(ctx, "aBC123!")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*10), final.Balance)
	assert.Len(t, transactions.entries, workers)
}

func TestLedger_History(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns entries newest first", func(t *testing.T) {
		accountRepo := &mocks.AccountRepository{}
		txRepo := &mocks.TransactionRepository{}
		svc := newLedgerService(t, accountRepo, txRepo, &mocks.TxManager{})

		txRepo.On("ListByAccount", ctx, "aBC123!").Return([]model.Transaction{
			{ID: 2, Type: model.TxTypeWithdraw, Amount: 50, Timestamp: "2026-09-01 12:00:00"},
			{ID: 1, Type: model.TxTypeDeposit, Amount: 100, Timestamp: "2026-09-01 11:00:00"},
		}, nil)

		history, err := svc.History(ctx, "aBC123!")

		assert.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, model.TxTypeWithdraw, history[0].Type)
	})

	t.Run("Unknown account reads as empty", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		svc := newLedgerService(t, &mocks.AccountRepository{}, txRepo, &mocks.TxManager{})

		txRepo.On("ListByAccount", ctx, "ZZZ999!").Return([]model.Transaction{}, nil)

		history, err := svc.History(ctx, "ZZZ999!")

		assert.NoError(t, err)
		assert.Empty(t, history)
	})
}
