// Package supabase implements the ledger repositories against the hosted
// Supabase PostgREST API. There is no server-side transaction or expression
// update here: balance mutation is an optimistic compare-and-set loop, and
// multi-statement operations rely on caller-side ordering.
package supabase

import (
	"context"
	"errors"
	"time"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"github.com/aryadee/smart-bank/pkg/postgrest"
)

const (
	accountsTable = "accounts"

	// casAttempts bounds the compare-and-set retry under concurrent
	// balance mutation before giving up.
	casAttempts = 5
)

var ErrBalanceContention = errors.New("BALANCE_CONTENTION")

type account struct {
	client postgrest.Client
}

func NewAccountRepository(client postgrest.Client) repository.AccountRepository {
	return &account{client: client}
}

func (r *account) Create(ctx context.Context, a *model.Account) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	err := r.client.Insert(ctx, accountsTable, a, a)
	if errors.Is(err, postgrest.ErrConflict) {
		return repository.ErrAccountExists
	}
	return err
}

func (r *account) FindByAccountNo(ctx context.Context, accountNo string) (model.Account, error) {
	return r.findOne(ctx, postgrest.Filters{"account_no": postgrest.Eq(accountNo)})
}

func (r *account) FindByCredentials(ctx context.Context, accountNo, pin string) (model.Account, error) {
	return r.findOne(ctx, postgrest.Filters{
		"account_no": postgrest.Eq(accountNo),
		"pin":        postgrest.Eq(pin),
	})
}

func (r *account) FindByRecovery(ctx context.Context, email, dob string) (model.Account, error) {
	return r.findOne(ctx, postgrest.Filters{
		"email": postgrest.Eq(email),
		"dob":   postgrest.Eq(dob),
	})
}

func (r *account) AdjustBalance(ctx context.Context, accountNo string, delta int64) (model.Account, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		current, err := r.FindByAccountNo(ctx, accountNo)
		if err != nil {
			return model.Account{}, err
		}

		newBalance := current.Balance + delta
		if newBalance < 0 {
			return model.Account{}, repository.ErrInsufficientBalance
		}

		n, err := r.client.Update(ctx, accountsTable,
			postgrest.Filters{
				"account_no": postgrest.Eq(accountNo),
				"balance":    postgrest.Eq(current.Balance),
			},
			map[string]any{"balance": newBalance, "updated_at": time.Now().UTC()})
		if err != nil {
			return model.Account{}, err
		}
		if n > 0 {
			current.Balance = newBalance
			return current, nil
		}
		// Someone else moved the balance between read and update; retry
		// against the fresh value.
	}

	return model.Account{}, ErrBalanceContention
}

func (r *account) UpdateDetails(ctx context.Context, accountNo, name, email, pin string) error {
	n, err := r.client.Update(ctx, accountsTable,
		postgrest.Filters{"account_no": postgrest.Eq(accountNo)},
		map[string]any{"name": name, "email": email, "pin": pin, "updated_at": time.Now().UTC()})
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrAccountNotFound
	}
	return nil
}

func (r *account) UpdatePIN(ctx context.Context, accountNo, pin string) error {
	n, err := r.client.Update(ctx, accountsTable,
		postgrest.Filters{"account_no": postgrest.Eq(accountNo)},
		map[string]any{"pin": pin, "updated_at": time.Now().UTC()})
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrAccountNotFound
	}
	return nil
}

func (r *account) Delete(ctx context.Context, accountNo string) error {
	n, err := r.client.Delete(ctx, accountsTable,
		postgrest.Filters{"account_no": postgrest.Eq(accountNo)})
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrAccountNotFound
	}
	return nil
}

func (r *account) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	err := r.client.Select(ctx, accountsTable, nil, "created_at.asc", &accounts)
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *account) findOne(ctx context.Context, filters postgrest.Filters) (model.Account, error) {
	var accounts []model.Account
	if err := r.client.Select(ctx, accountsTable, filters, "", &accounts); err != nil {
		return model.Account{}, err
	}
	if len(accounts) == 0 {
		return model.Account{}, repository.ErrAccountNotFound
	}
	return accounts[0], nil
}
