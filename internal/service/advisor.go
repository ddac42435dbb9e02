package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryadee/smart-bank/internal/constants"
	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"github.com/aryadee/smart-bank/pkg/genai"
	"go.uber.org/zap"
)

// adviceHistoryLimit caps how many recent entries the prompt carries.
const adviceHistoryLimit = 10

type AdvisorService interface {
	Advise(ctx context.Context, accountNo string) (string, error)
}

type advisor struct {
	accountRepo repository.AccountRepository
	txRepo      repository.TransactionRepository
	genai       genai.Client
	logger      *zap.Logger
}

func NewAdvisorService(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository,
	client genai.Client, logger *zap.Logger) AdvisorService {
	return &advisor{accountRepo: accountRepo, txRepo: txRepo, genai: client, logger: logger}
}

func (s *advisor) Advise(ctx context.Context, accountNo string) (string, error) {
	acc, err := s.accountRepo.FindByAccountNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", NewServiceError(constants.ErrCodeAccountNotFound,
				errors.New(constants.ErrMsgAccountNotFound))
		}
		s.logger.Error("Failed to load account for advice", zap.Error(err))
		return "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	history, err := s.txRepo.ListByAccount(ctx, accountNo)
	if err != nil {
		s.logger.Error("Failed to load history for advice", zap.Error(err))
		return "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	advice, err := s.genai.GenerateContent(ctx, buildAdvicePrompt(acc, history))
	if err != nil {
		if errors.Is(err, genai.ErrNotConfigured) {
			return "", NewServiceError(constants.ErrCodeAdvisorNotConfigured, err)
		}
		s.logger.Warn("Advisor call failed",
			zap.String("accountNo", accountNo), zap.Error(err))
		return "", NewServiceError(constants.ErrCodeAdvisorUnavailable, err)
	}

	return advice, nil
}

func buildAdvicePrompt(acc model.Account, history []model.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a helpful financial advisor for a personal banking app.\n")
	fmt.Fprintf(&b, "Customer: %s\n", acc.Name)
	fmt.Fprintf(&b, "Current balance: ₹%d\n", acc.Balance)

	if len(history) == 0 {
		b.WriteString("Recent transactions: none\n")
	} else {
		b.WriteString("Recent transactions (newest first):\n")
		for i, tx := range history {
			if i == adviceHistoryLimit {
				break
			}
			fmt.Fprintf(&b, "- %s ₹%d on %s\n", tx.Type, tx.Amount, tx.Timestamp)
		}
	}

	b.WriteString("Give short, practical financial advice on saving and spending " +
		"based on this activity. Keep it under 150 words.")
	return b.String()
}
