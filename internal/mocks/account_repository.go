package mocks

import (
	"context"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AccountRepository) FindByAccountNo(ctx context.Context, accountNo string) (model.Account, error) {
	args := m.Called(ctx, accountNo)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountRepository) FindByCredentials(ctx context.Context, accountNo, pin string) (model.Account, error) {
	args := m.Called(ctx, accountNo, pin)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountRepository) FindByRecovery(ctx context.Context, email, dob string) (model.Account, error) {
	args := m.Called(ctx, email, dob)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountRepository) AdjustBalance(ctx context.Context, accountNo string, delta int64) (model.Account, error) {
	args := m.Called(ctx, accountNo, delta)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountRepository) UpdateDetails(ctx context.Context, accountNo, name, email, pin string) error {
	args := m.Called(ctx, accountNo, name, email, pin)
	return args.Error(0)
}

func (m *AccountRepository) UpdatePIN(ctx context.Context, accountNo, pin string) error {
	args := m.Called(ctx, accountNo, pin)
	return args.Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, accountNo string) error {
	args := m.Called(ctx, accountNo)
	return args.Error(0)
}

func (m *AccountRepository) List(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Account), args.Error(1)
}
