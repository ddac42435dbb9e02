package supabase

import (
	"context"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"github.com/aryadee/smart-bank/pkg/postgrest"
)

const transactionsTable = "transactions"

type transaction struct {
	client postgrest.Client
}

func NewTransactionRepository(client postgrest.Client) repository.TransactionRepository {
	return &transaction{client: client}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	return t.client.Insert(ctx, transactionsTable, tx, tx)
}

func (t *transaction) ListByAccount(ctx context.Context, accountNo string) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := t.client.Select(ctx, transactionsTable,
		postgrest.Filters{"account_no": postgrest.Eq(accountNo)},
		"timestamp.desc,id.desc", &txs)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (t *transaction) ListAll(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := t.client.Select(ctx, transactionsTable, nil, "timestamp.desc,id.desc", &txs)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// DeleteByAccount is fine with zero matches; a fresh account simply has no
// history to clear.
func (t *transaction) DeleteByAccount(ctx context.Context, accountNo string) error {
	_, err := t.client.Delete(ctx, transactionsTable,
		postgrest.Filters{"account_no": postgrest.Eq(accountNo)})
	return err
}
