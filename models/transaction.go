// go-bank-ledger/models/transaction.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes the two monetary events the ledger records.
// The values double as the labels printed on statements.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
)

// Transaction is an immutable description of one monetary event. It is built
// once via NewDeposit/NewWithdrawal and never mutated afterwards.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewDeposit creates a deposit transaction for the given amount.
func NewDeposit(amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		Kind:      KindDeposit,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
}

// NewWithdrawal creates a withdrawal transaction for the given amount.
func NewWithdrawal(amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		Kind:      KindWithdrawal,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
}

// Register applies the transaction to the account and, only if the mutation
// succeeds, appends it to the account's history. A failed operation leaves no
// trace in the history; the returned error is the caller's only signal.
func (t *Transaction) Register(account *CheckingAccount) error {
	var err error
	switch t.Kind {
	case KindWithdrawal:
		err = account.Withdraw(t.Amount)
	default:
		err = account.Deposit(t.Amount)
	}
	if err != nil {
		return err
	}
	account.History.AddTransaction(t)
	return nil
}
