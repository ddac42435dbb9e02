package mocks

import (
	"context"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/service"
	"github.com/stretchr/testify/mock"
)

type LedgerService struct {
	mock.Mock
}

func (m *LedgerService) Deposit(ctx context.Context, cmd service.BalanceCommand) (service.BalanceResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.BalanceResult), args.Error(1)
}

func (m *LedgerService) Withdraw(ctx context.Context, cmd service.BalanceCommand) (service.BalanceResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.BalanceResult), args.Error(1)
}

func (m *LedgerService) History(ctx context.Context, accountNo string) ([]model.Transaction, error) {
	args := m.Called(ctx, accountNo)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerService) ListAll(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Transaction), args.Error(1)
}
