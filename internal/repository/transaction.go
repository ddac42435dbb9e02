package repository

import (
	"context"

	"github.com/aryadee/smart-bank/internal/model"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	// ListByAccount returns the account's transactions newest first.
	ListByAccount(ctx context.Context, accountNo string) ([]model.Transaction, error)
	ListAll(ctx context.Context) ([]model.Transaction, error)
	DeleteByAccount(ctx context.Context, accountNo string) error
}

type transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transaction{db: db}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	return GetTx(ctx, t.db).Create(tx).Error
}

func (t *transaction) ListByAccount(ctx context.Context, accountNo string) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := GetTx(ctx, t.db).
		Where("account_no = ?", accountNo).
		Order("timestamp DESC, id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (t *transaction) ListAll(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := GetTx(ctx, t.db).Order("timestamp DESC, id DESC").Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (t *transaction) DeleteByAccount(ctx context.Context, accountNo string) error {
	return GetTx(ctx, t.db).Where("account_no = ?", accountNo).Delete(&model.Transaction{}).Error
}
