// go-bank-ledger/models/errors.go
package models

import "errors"

// Domain errors are sentinel values so that callers (services, handlers, the
// CLI menu) can branch with errors.Is instead of parsing message text.
var (
	// ErrInvalidAmount is returned for non-positive deposit or withdrawal amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrCeilingExceeded is returned when a single withdrawal exceeds the per-withdrawal ceiling.
	ErrCeilingExceeded = errors.New("withdrawal amount exceeds limit")

	// ErrWithdrawalsExhausted is returned when the lifetime withdrawal count limit is reached.
	ErrWithdrawalsExhausted = errors.New("maximum number of withdrawals exceeded")

	// ErrClientNotFound is returned when no client matches the given national ID.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientAlreadyExists is returned when registering a national ID that is already taken.
	ErrClientAlreadyExists = errors.New("client with this national ID already exists")

	// ErrAccountNotFound is returned when no account matches the given account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoAccounts is returned when a client has not opened any account yet.
	ErrNoAccounts = errors.New("client has no accounts")
)
