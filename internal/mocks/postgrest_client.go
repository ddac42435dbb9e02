package mocks

import (
	"context"

	"github.com/aryadee/smart-bank/pkg/postgrest"
	"github.com/stretchr/testify/mock"
)

type PostgrestClient struct {
	mock.Mock
}

func (m *PostgrestClient) Select(ctx context.Context, table string, filters postgrest.Filters, order string, into any) error {
	args := m.Called(ctx, table, filters, order, into)
	return args.Error(0)
}

func (m *PostgrestClient) Insert(ctx context.Context, table string, body any, into any) error {
	args := m.Called(ctx, table, body, into)
	return args.Error(0)
}

func (m *PostgrestClient) Update(ctx context.Context, table string, filters postgrest.Filters, body any) (int, error) {
	args := m.Called(ctx, table, filters, body)
	return args.Int(0), args.Error(1)
}

func (m *PostgrestClient) Delete(ctx context.Context, table string, filters postgrest.Filters) (int, error) {
	args := m.Called(ctx, table, filters)
	return args.Int(0), args.Error(1)
}
