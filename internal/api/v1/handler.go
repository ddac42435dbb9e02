package v1

import (
	"context"
	"time"

	"github.com/aryadee/smart-bank/internal/api/contract"
	"github.com/aryadee/smart-bank/internal/api/middleware"
	"github.com/aryadee/smart-bank/internal/api/validator"
	"github.com/aryadee/smart-bank/internal/constants"
	"github.com/aryadee/smart-bank/internal/metrics"
	"github.com/aryadee/smart-bank/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger         *zap.Logger
	accountService service.AccountService
	ledgerService  service.LedgerService
	advisorService service.AdvisorService
	XValidator     validator.IXValidator
	metrics        *metrics.Metrics
}

func NewHandler(logger *zap.Logger, accountService service.AccountService, ledgerService service.LedgerService,
	advisorService service.AdvisorService, XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:         logger,
		accountService: accountService,
		ledgerService:  ledgerService,
		advisorService: advisorService,
		XValidator:     XValidator,
		metrics:        metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var request CreateAccountRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Warn("Invalid create account request", zap.String("message", responseError.Message))
		h.metrics.RecordAccountCreationError()
		return c.JSON(responseError)
	}

	cmd := service.CreateAccountCommand{
		Name:  request.Name,
		DOB:   request.DOB,
		Email: request.Email,
		PIN:   request.PIN,
	}

	result, err := h.accountService.Create(c.UserContext(), cmd)
	if err != nil {
		h.metrics.RecordAccountCreationError()
		return err
	}

	h.metrics.RecordAccountCreated()
	h.logger.Info("Account opened", zap.String("accountNo", result.AccountNo))

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    "account created successfully",
		TrackID:    middleware.GetTrackID(c),
		Result: CreateAccountResponse{
			AccountNo: result.AccountNo,
			Name:      result.Name,
			Balance:   result.Balance,
		},
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var request LoginRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.metrics.RecordLogin("validation_failed")
		return c.JSON(responseError)
	}

	session, err := h.accountService.Authenticate(c.UserContext(), request.AccountNo, request.PIN)
	if err != nil {
		h.metrics.RecordLogin("failure")
		return err
	}

	h.metrics.RecordLogin("success")
	h.logger.Info("Login succeeded",
		zap.String("accountNo", session.AccountNo),
		zap.Bool("admin", session.Admin))

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result: LoginResponse{
			AccountNo: session.AccountNo,
			Name:      session.Name,
			Admin:     session.Admin,
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		},
	})
}

func (h *Handler) Recover(c *fiber.Ctx) error {
	var request RecoverRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return c.JSON(responseError)
	}

	result, err := h.accountService.Recover(c.UserContext(), request.Email, request.DOB)
	if err != nil {
		return err
	}

	h.logger.Info("Credentials recovered", zap.String("accountNo", result.AccountNo))

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result: RecoverResponse{
			AccountNo: result.AccountNo,
			Name:      result.Name,
			PIN:       result.PIN,
		},
	})
}

func (h *Handler) GetAccount(c *fiber.Ctx) error {
	accountNo := middleware.SessionAccountNo(c)

	account, err := h.accountService.Get(c.UserContext(), accountNo)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result:     NewAccountResponse(account),
	})
}

func (h *Handler) UpdateAccount(c *fiber.Ctx) error {
	var request UpdateDetailsRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return c.JSON(responseError)
	}

	cmd := service.UpdateDetailsCommand{
		AccountNo: middleware.SessionAccountNo(c),
		Name:      request.Name,
		Email:     request.Email,
		PIN:       request.PIN,
	}

	if err := h.accountService.UpdateDetails(c.UserContext(), cmd); err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    "account details updated",
		TrackID:    middleware.GetTrackID(c),
	})
}

func (h *Handler) ChangePIN(c *fiber.Ctx) error {
	var request ChangePINRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		return c.JSON(responseError)
	}

	cmd := service.ChangePINCommand{
		AccountNo: middleware.SessionAccountNo(c),
		OldPIN:    request.OldPIN,
		NewPIN:    request.NewPIN,
	}

	if err := h.accountService.ChangePIN(c.UserContext(), cmd); err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    "PIN changed successfully",
		TrackID:    middleware.GetTrackID(c),
	})
}

func (h *Handler) DeleteAccount(c *fiber.Ctx) error {
	accountNo := middleware.SessionAccountNo(c)

	if err := h.accountService.Delete(c.UserContext(), accountNo); err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    "account closed",
		TrackID:    middleware.GetTrackID(c),
	})
}

func (h *Handler) Deposit(c *fiber.Ctx) error {
	return h.mutateBalance(c, "Deposit", h.ledgerService.Deposit)
}

func (h *Handler) Withdraw(c *fiber.Ctx) error {
	return h.mutateBalance(c, "Withdraw", h.ledgerService.Withdraw)
}

func (h *Handler) mutateBalance(c *fiber.Ctx, txType string,
	apply func(ctx context.Context, cmd service.BalanceCommand) (service.BalanceResult, error)) error {
	var request AmountRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.metrics.RecordTransactionError(txType, "validation_failed")
		return c.JSON(responseError)
	}

	cmd := service.BalanceCommand{
		AccountNo: middleware.SessionAccountNo(c),
		Amount:    request.Amount,
	}

	result, err := apply(c.UserContext(), cmd)
	if err != nil {
		h.metrics.RecordTransactionError(txType, "service_error")
		return err
	}

	h.metrics.RecordTransaction(txType)
	h.logger.Info("Balance mutated",
		zap.String("accountNo", cmd.AccountNo),
		zap.String("type", txType),
		zap.Int64("balance", result.Balance))

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result: BalanceResponse{
			AccountNo: result.AccountNo,
			Balance:   result.Balance,
			Timestamp: result.Timestamp,
		},
	})
}

func (h *Handler) Transactions(c *fiber.Ctx) error {
	accountNo := middleware.SessionAccountNo(c)

	history, err := h.ledgerService.History(c.UserContext(), accountNo)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result:     NewTransactionResponses(history),
	})
}

func (h *Handler) Advice(c *fiber.Ctx) error {
	accountNo := middleware.SessionAccountNo(c)

	advice, err := h.advisorService.Advise(c.UserContext(), accountNo)
	if err != nil {
		h.metrics.RecordAdvisorCall("error")
		return err
	}

	h.metrics.RecordAdvisorCall("success")

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result:     AdviceResponse{AccountNo: accountNo, Advice: advice},
	})
}

func (h *Handler) AdminListAccounts(c *fiber.Ctx) error {
	accounts, err := h.accountService.List(c.UserContext())
	if err != nil {
		return err
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result:     responses,
	})
}

func (h *Handler) AdminListTransactions(c *fiber.Ctx) error {
	transactions, err := h.ledgerService.ListAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    middleware.GetTrackID(c),
		Result:     NewTransactionResponses(transactions),
	})
}
