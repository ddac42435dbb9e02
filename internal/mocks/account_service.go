package mocks

import (
	"context"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/service"
	"github.com/stretchr/testify/mock"
)

type AccountService struct {
	mock.Mock
}

func (m *AccountService) Create(ctx context.Context, cmd service.CreateAccountCommand) (service.CreateAccountResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.CreateAccountResult), args.Error(1)
}

func (m *AccountService) Authenticate(ctx context.Context, accountNo, pin string) (service.Session, error) {
	args := m.Called(ctx, accountNo, pin)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *AccountService) Recover(ctx context.Context, email, dob string) (service.RecoveryResult, error) {
	args := m.Called(ctx, email, dob)
	return args.Get(0).(service.RecoveryResult), args.Error(1)
}

func (m *AccountService) Get(ctx context.Context, accountNo string) (model.Account, error) {
	args := m.Called(ctx, accountNo)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountService) UpdateDetails(ctx context.Context, cmd service.UpdateDetailsCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *AccountService) ChangePIN(ctx context.Context, cmd service.ChangePINCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *AccountService) Delete(ctx context.Context, accountNo string) error {
	args := m.Called(ctx, accountNo)
	return args.Error(0)
}

func (m *AccountService) List(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Account), args.Error(1)
}
