package domain

import "errors"

var (
	// Transaction errors
	ErrSameAccount         = errors.New("debit and credit accounts cannot be the same")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUnknownAccount      = errors.New("account is not in the chart of accounts")
	ErrMissingDate         = errors.New("transaction date is required")
	ErrMissingOwner        = errors.New("transaction owner is required")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Chart errors
	ErrDuplicateAccountID = errors.New("duplicate account id in chart")
)
