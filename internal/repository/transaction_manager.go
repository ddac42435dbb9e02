package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TxManager {
	return &TransactionManager{db: db}
}

func (tm *TransactionManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func GetTx(ctx context.Context, db *gorm.DB) *gorm.DB {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok {
		return db
	}
	return tx
}

// NoopTxManager is used by backends without transactional semantics
// (the hosted PostgREST storage). Callers keep their statement ordering
// as the only partial-failure bound.
type NoopTxManager struct{}

func NewNoopTxManager() TxManager {
	return &NoopTxManager{}
}

func (NoopTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
