package service

import (
	"context"
	"errors"
	"time"

	"github.com/aryadee/smart-bank/internal/config"
	"github.com/aryadee/smart-bank/internal/constants"
	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"go.uber.org/zap"
)

const timestampLayout = "2006-01-02 15:04:05"

type LedgerService interface {
	Deposit(ctx context.Context, cmd BalanceCommand) (BalanceResult, error)
	Withdraw(ctx context.Context, cmd BalanceCommand) (BalanceResult, error)
	History(ctx context.Context, accountNo string) ([]model.Transaction, error)
	ListAll(ctx context.Context) ([]model.Transaction, error)
}

type ledger struct {
	accountRepo repository.AccountRepository
	txRepo      repository.TransactionRepository
	txManager   repository.TxManager
	cfg         config.Ledger
	location    *time.Location
	now         func() time.Time
	logger      *zap.Logger
}

func NewLedgerService(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository,
	txManager repository.TxManager, cfg config.Ledger, logger *zap.Logger) (LedgerService, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &ledger{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		txManager:   txManager,
		cfg:         cfg,
		location:    location,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (l *ledger) Deposit(ctx context.Context, cmd BalanceCommand) (BalanceResult, error) {
	if cmd.Amount < 1 || cmd.Amount > l.cfg.MaxDeposit {
		return BalanceResult{}, NewServiceError(constants.ErrCodeAmountOutOfRange,
			errors.New(constants.ErrMsgAmountOutOfRange))
	}

	return l.apply(ctx, cmd.AccountNo, cmd.Amount, model.TxTypeDeposit)
}

func (l *ledger) Withdraw(ctx context.Context, cmd BalanceCommand) (BalanceResult, error) {
	if cmd.Amount < 1 {
		return BalanceResult{}, NewServiceError(constants.ErrCodeAmountOutOfRange,
			errors.New(constants.ErrMsgAmountOutOfRange))
	}

	return l.apply(ctx, cmd.AccountNo, -cmd.Amount, model.TxTypeWithdraw)
}

// apply mutates the balance and records the ledger entry in one unit.
// The balance change itself is a single guarded statement, so concurrent
// deposits and withdraws can never drop each other's updates.
func (l *ledger) apply(ctx context.Context, accountNo string, delta int64, txType model.TxType) (BalanceResult, error) {
	timestamp := l.now().In(l.location).Format(timestampLayout)

	var result BalanceResult
	err := l.txManager.WithTx(ctx, func(ctx context.Context) error {
		acc, err := l.accountRepo.AdjustBalance(ctx, accountNo, delta)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrAccountNotFound):
				return NewServiceError(constants.ErrCodeAccountNotFound,
					errors.New(constants.ErrMsgAccountNotFound))
			case errors.Is(err, repository.ErrInsufficientBalance):
				return NewServiceError(constants.ErrCodeInsufficientBalance,
					errors.New(constants.ErrMsgInsufficientBalance))
			}
			l.logger.Error("Failed to adjust balance",
				zap.String("accountNo", accountNo), zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		amount := delta
		if amount < 0 {
			amount = -amount
		}

		entry := model.Transaction{
			AccountNo: accountNo,
			Type:      txType,
			Amount:    amount,
			Timestamp: timestamp,
		}
		if err := l.txRepo.Create(ctx, &entry); err != nil {
			l.logger.Error("Failed to record transaction",
				zap.String("accountNo", accountNo), zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		result = BalanceResult{AccountNo: accountNo, Balance: acc.Balance, Timestamp: timestamp}
		return nil
	})
	if err != nil {
		return BalanceResult{}, err
	}

	l.logger.Info("Balance updated",
		zap.String("accountNo", accountNo),
		zap.String("type", string(txType)),
		zap.Int64("balance", result.Balance))
	return result, nil
}

// History returns an empty slice for an unknown or closed account, so a
// freshly deleted account reads as having no entries rather than erroring.
func (l *ledger) History(ctx context.Context, accountNo string) ([]model.Transaction, error) {
	txs, err := l.txRepo.ListByAccount(ctx, accountNo)
	if err != nil {
		l.logger.Error("Failed to list transactions",
			zap.String("accountNo", accountNo), zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return txs, nil
}

func (l *ledger) ListAll(ctx context.Context) ([]model.Transaction, error) {
	txs, err := l.txRepo.ListAll(ctx)
	if err != nil {
		l.logger.Error("Failed to list all transactions", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return txs, nil
}
