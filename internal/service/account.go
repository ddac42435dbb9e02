package service

import (
	"context"
	"errors"
	"time"

	"github.com/aryadee/smart-bank/internal/config"
	"github.com/aryadee/smart-bank/internal/constants"
	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"go.uber.org/zap"
)

const (
	minAccountAge = 18
	dobLayout     = "2006-01-02"
)

// deriveAge computes full years elapsed since the date of birth. The stored
// age is always derived here, never taken from the caller.
func deriveAge(dob string, now time.Time) (int, error) {
	born, err := time.Parse(dobLayout, dob)
	if err != nil {
		return 0, err
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, nil
}

type AccountService interface {
	Create(ctx context.Context, cmd CreateAccountCommand) (CreateAccountResult, error)
	Authenticate(ctx context.Context, accountNo, pin string) (Session, error)
	Recover(ctx context.Context, email, dob string) (RecoveryResult, error)
	Get(ctx context.Context, accountNo string) (model.Account, error)
	UpdateDetails(ctx context.Context, cmd UpdateDetailsCommand) error
	ChangePIN(ctx context.Context, cmd ChangePINCommand) error
	Delete(ctx context.Context, accountNo string) error
	List(ctx context.Context) ([]model.Account, error)
}

type account struct {
	accountRepo repository.AccountRepository
	txRepo      repository.TransactionRepository
	txManager   repository.TxManager
	generator   AccountNumberGenerator
	issuer      TokenIssuer
	auth        config.Auth
	ledger      config.Ledger
	logger      *zap.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository,
	txManager repository.TxManager, generator AccountNumberGenerator, issuer TokenIssuer,
	auth config.Auth, ledger config.Ledger, logger *zap.Logger) AccountService {
	return &account{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		txManager:   txManager,
		generator:   generator,
		issuer:      issuer,
		auth:        auth,
		ledger:      ledger,
		logger:      logger,
	}
}

func (a *account) Create(ctx context.Context, cmd CreateAccountCommand) (CreateAccountResult, error) {
	age, err := deriveAge(cmd.DOB, time.Now())
	if err != nil {
		return CreateAccountResult{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}
	if age < minAccountAge {
		return CreateAccountResult{}, NewServiceError(constants.ErrCodeUnderage,
			errors.New(constants.ErrMsgUnderage))
	}

	acc := model.Account{
		Name:  cmd.Name,
		Age:   age,
		DOB:   cmd.DOB,
		Email: cmd.Email,
		PIN:   cmd.PIN,
	}

	// Generated numbers can collide with existing rows; the unique key
	// rejects the insert and we retry with a fresh candidate.
	for attempt := 0; attempt < a.ledger.MaxAccountNoAttempts; attempt++ {
		acc.AccountNo = a.generator.Generate()

		err := a.accountRepo.Create(ctx, &acc)
		if err == nil {
			a.logger.Info("Account created", zap.String("accountNo", acc.AccountNo))
			return CreateAccountResult{AccountNo: acc.AccountNo, Name: acc.Name, Balance: acc.Balance}, nil
		}

		if errors.Is(err, repository.ErrAccountExists) {
			a.logger.Warn("Account number collision, retrying",
				zap.String("accountNo", acc.AccountNo), zap.Int("attempt", attempt+1))
			continue
		}

		a.logger.Error("Failed to create account", zap.Error(err))
		return CreateAccountResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	a.logger.Error("Account number space exhausted",
		zap.Int("attempts", a.ledger.MaxAccountNoAttempts))
	return CreateAccountResult{}, NewServiceError(constants.ErrCodeAccountNumberExhausted,
		errors.New(constants.ErrMsgAccountNumberExhausted))
}

func (a *account) Authenticate(ctx context.Context, accountNo, pin string) (Session, error) {
	// The administrator is a config sentinel, not a row; check it before
	// touching storage so the admin can sign in on an empty database.
	if accountNo == a.auth.AdminAccountNo && pin == a.auth.AdminPIN {
		return a.newSession(accountNo, "Administrator", true)
	}

	acc, err := a.accountRepo.FindByCredentials(ctx, accountNo, pin)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return Session{}, NewServiceError(constants.ErrCodeInvalidCredentials,
				errors.New(constants.ErrMsgInvalidCredentials))
		}
		a.logger.Error("Failed to look up credentials", zap.Error(err))
		return Session{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return a.newSession(acc.AccountNo, acc.Name, false)
}

func (a *account) newSession(accountNo, name string, admin bool) (Session, error) {
	token, expiresAt, err := a.issuer.Issue(accountNo, admin)
	if err != nil {
		a.logger.Error("Failed to sign session token", zap.Error(err))
		return Session{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return Session{
		AccountNo: accountNo,
		Name:      name,
		Admin:     admin,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *account) Recover(ctx context.Context, email, dob string) (RecoveryResult, error) {
	acc, err := a.accountRepo.FindByRecovery(ctx, email, dob)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return RecoveryResult{}, NewServiceError(constants.ErrCodeAccountNotFound,
				errors.New(constants.ErrMsgAccountNotFound))
		}
		a.logger.Error("Failed to look up recovery details", zap.Error(err))
		return RecoveryResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return RecoveryResult{AccountNo: acc.AccountNo, Name: acc.Name, PIN: acc.PIN}, nil
}

func (a *account) Get(ctx context.Context, accountNo string) (model.Account, error) {
	acc, err := a.accountRepo.FindByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.Account{}, NewServiceError(constants.ErrCodeAccountNotFound,
				errors.New(constants.ErrMsgAccountNotFound))
		}
		a.logger.Error("Failed to load account", zap.Error(err))
		return model.Account{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return acc, nil
}

func (a *account) UpdateDetails(ctx context.Context, cmd UpdateDetailsCommand) error {
	err := a.accountRepo.UpdateDetails(ctx, cmd.AccountNo, cmd.Name, cmd.Email, cmd.PIN)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return NewServiceError(constants.ErrCodeAccountNotFound,
				errors.New(constants.ErrMsgAccountNotFound))
		}
		a.logger.Error("Failed to update account details",
			zap.String("accountNo", cmd.AccountNo), zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	a.logger.Info("Account details updated", zap.String("accountNo", cmd.AccountNo))
	return nil
}

func (a *account) ChangePIN(ctx context.Context, cmd ChangePINCommand) error {
	if cmd.NewPIN == cmd.OldPIN {
		return NewServiceError(constants.ErrCodePINUnchanged,
			errors.New(constants.ErrMsgPINUnchanged))
	}

	_, err := a.accountRepo.FindByCredentials(ctx, cmd.AccountNo, cmd.OldPIN)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return NewServiceError(constants.ErrCodeInvalidCredentials,
				errors.New(constants.ErrMsgInvalidCredentials))
		}
		a.logger.Error("Failed to verify current PIN", zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := a.accountRepo.UpdatePIN(ctx, cmd.AccountNo, cmd.NewPIN); err != nil {
		a.logger.Error("Failed to update PIN",
			zap.String("accountNo", cmd.AccountNo), zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	a.logger.Info("PIN changed", zap.String("accountNo", cmd.AccountNo))
	return nil
}

func (a *account) Delete(ctx context.Context, accountNo string) error {
	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		// Transactions go first so a partial failure never leaves
		// orphaned history behind a deleted account.
		if err := a.txRepo.DeleteByAccount(ctx, accountNo); err != nil {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := a.accountRepo.Delete(ctx, accountNo); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return NewServiceError(constants.ErrCodeAccountNotFound,
					errors.New(constants.ErrMsgAccountNotFound))
			}
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})
	if err != nil {
		a.logger.Warn("Failed to delete account",
			zap.String("accountNo", accountNo), zap.Error(err))
		return err
	}

	a.logger.Info("Account deleted", zap.String("accountNo", accountNo))
	return nil
}

func (a *account) List(ctx context.Context) ([]model.Account, error) {
	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		a.logger.Error("Failed to list accounts", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return accounts, nil
}
