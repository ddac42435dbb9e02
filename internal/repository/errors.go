package repository

import "errors"

var (
	ErrAccountExists       = errors.New("ACCOUNT_EXISTS")
	ErrAccountNotFound     = errors.New("ACCOUNT_NOT_FOUND")
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
)
