package repository

import (
	"context"
	"errors"

	"github.com/aryadee/smart-bank/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	FindByAccountNo(ctx context.Context, accountNo string) (model.Account, error)
	FindByCredentials(ctx context.Context, accountNo, pin string) (model.Account, error)
	FindByRecovery(ctx context.Context, email, dob string) (model.Account, error)
	// AdjustBalance applies delta atomically in a single statement.
	// A negative delta requires balance >= -delta and fails with
	// ErrInsufficientBalance otherwise, leaving the row untouched.
	AdjustBalance(ctx context.Context, accountNo string, delta int64) (model.Account, error)
	UpdateDetails(ctx context.Context, accountNo, name, email, pin string) error
	UpdatePIN(ctx context.Context, accountNo, pin string) error
	Delete(ctx context.Context, accountNo string) error
	List(ctx context.Context) ([]model.Account, error)
}

type account struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &account{db: db}
}

func (r *account) Create(ctx context.Context, a *model.Account) error {
	err := GetTx(ctx, r.db).Create(a).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAccountExists
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrAccountExists
	}

	return err
}

func (r *account) FindByAccountNo(ctx context.Context, accountNo string) (model.Account, error) {
	var a model.Account
	err := GetTx(ctx, r.db).Where("account_no = ?", accountNo).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Account{}, ErrAccountNotFound
		}
		return model.Account{}, err
	}
	return a, nil
}

// FindByCredentials is a plain equality match on account_no and the
// plaintext PIN. Weak-auth mode carried over from the original system.
func (r *account) FindByCredentials(ctx context.Context, accountNo, pin string) (model.Account, error) {
	var a model.Account
	err := GetTx(ctx, r.db).Where("account_no = ? AND pin = ?", accountNo, pin).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Account{}, ErrAccountNotFound
		}
		return model.Account{}, err
	}
	return a, nil
}

func (r *account) FindByRecovery(ctx context.Context, email, dob string) (model.Account, error) {
	var a model.Account
	err := GetTx(ctx, r.db).Where("email = ? AND dob = ?", email, dob).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Account{}, ErrAccountNotFound
		}
		return model.Account{}, err
	}
	return a, nil
}

func (r *account) AdjustBalance(ctx context.Context, accountNo string, delta int64) (model.Account, error) {
	db := GetTx(ctx, r.db)

	q := db.Model(&model.Account{}).Where("account_no = ?", accountNo)
	if delta < 0 {
		q = q.Where("balance >= ?", -delta)
	}

	res := q.Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return model.Account{}, res.Error
	}

	if res.RowsAffected == 0 {
		var a model.Account
		if err := db.Where("account_no = ?", accountNo).First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.Account{}, ErrAccountNotFound
			}
			return model.Account{}, err
		}
		return model.Account{}, ErrInsufficientBalance
	}

	return r.FindByAccountNo(ctx, accountNo)
}

// RowsAffected is no existence signal on updates: MySQL reports zero
// changed rows when the new values equal the old ones. Both update
// methods check the row first instead.
func (r *account) UpdateDetails(ctx context.Context, accountNo, name, email, pin string) error {
	db := GetTx(ctx, r.db)
	if _, err := r.FindByAccountNo(ctx, accountNo); err != nil {
		return err
	}
	return db.Model(&model.Account{}).
		Where("account_no = ?", accountNo).
		Updates(map[string]any{"name": name, "email": email, "pin": pin}).Error
}

func (r *account) UpdatePIN(ctx context.Context, accountNo, pin string) error {
	db := GetTx(ctx, r.db)
	if _, err := r.FindByAccountNo(ctx, accountNo); err != nil {
		return err
	}
	return db.Model(&model.Account{}).
		Where("account_no = ?", accountNo).
		Update("pin", pin).Error
}

func (r *account) Delete(ctx context.Context, accountNo string) error {
	res := GetTx(ctx, r.db).Where("account_no = ?", accountNo).Delete(&model.Account{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *account) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := GetTx(ctx, r.db).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
