package mocks

import (
	"context"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *TransactionRepository) ListByAccount(ctx context.Context, accountNo string) ([]model.Transaction, error) {
	args := m.Called(ctx, accountNo)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) ListAll(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) DeleteByAccount(ctx context.Context, accountNo string) error {
	args := m.Called(ctx, accountNo)
	return args.Error(0)
}
