package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type GenAIClient struct {
	mock.Mock
}

func (m *GenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
