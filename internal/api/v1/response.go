package v1

import "github.com/aryadee/smart-bank/internal/model"

type AccountResponse struct {
	AccountNo string `json:"account_no"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	DOB       string `json:"dob"`
	Email     string `json:"email"`
	Balance   int64  `json:"balance"`
}

func NewAccountResponse(a model.Account) AccountResponse {
	return AccountResponse{
		AccountNo: a.AccountNo,
		Name:      a.Name,
		Age:       a.Age,
		DOB:       a.DOB,
		Email:     a.Email,
		Balance:   a.Balance,
	}
}

type CreateAccountResponse struct {
	AccountNo string `json:"account_no"`
	Name      string `json:"name"`
	Balance   int64  `json:"balance"`
}

type LoginResponse struct {
	AccountNo string `json:"account_no"`
	Name      string `json:"name"`
	Admin     bool   `json:"admin"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type RecoverResponse struct {
	AccountNo string `json:"account_no"`
	Name      string `json:"name"`
	PIN       string `json:"pin"`
}

type BalanceResponse struct {
	AccountNo string `json:"account_no"`
	Balance   int64  `json:"balance"`
	Timestamp string `json:"timestamp"`
}

type TransactionResponse struct {
	ID        int64  `json:"id"`
	AccountNo string `json:"account_no"`
	Type      string `json:"type"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

func NewTransactionResponses(txs []model.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			ID:        tx.ID,
			AccountNo: tx.AccountNo,
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			Timestamp: tx.Timestamp,
		})
	}
	return out
}

type AdviceResponse struct {
	AccountNo string `json:"account_no"`
	Advice    string `json:"advice"`
}
