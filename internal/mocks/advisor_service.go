package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type AdvisorService struct {
	mock.Mock
}

func (m *AdvisorService) Advise(ctx context.Context, accountNo string) (string, error) {
	args := m.Called(ctx, accountNo)
	return args.String(0), args.Error(1)
}
