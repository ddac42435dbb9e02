package service

import "time"

type CreateAccountCommand struct {
	Name  string
	DOB   string
	Email string
	PIN   string
}

type CreateAccountResult struct {
	AccountNo string
	Name      string
	Balance   int64
}

type Session struct {
	AccountNo string
	Name      string
	Admin     bool
	Token     string
	ExpiresAt time.Time
}

type RecoveryResult struct {
	AccountNo string
	Name      string
	PIN       string
}

type UpdateDetailsCommand struct {
	AccountNo string
	Name      string
	Email     string
	PIN       string
}

type ChangePINCommand struct {
	AccountNo string
	OldPIN    string
	NewPIN    string
}

type BalanceCommand struct {
	AccountNo string
	Amount    int64
}

type BalanceResult struct {
	AccountNo string
	Balance   int64
	Timestamp string
}
