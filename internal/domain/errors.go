package domain

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidOwnerName  = errors.New("owner name must not be empty")
	ErrSelfTransfer      = errors.New("cannot transfer to same account")
)
