// go-bank-ledger/models/account.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgencyCode is the fixed branch identifier attached to every account.
const AgencyCode = "0001"

// Checking-account policy constants: a single withdrawal may not exceed the
// ceiling, and an account may never record more withdrawals than the limit.
// The count is a lifetime counter over the full history; it does not reset.
const (
	CheckingWithdrawalLimit        = 3
	checkingWithdrawalCeilingUnits = 500
)

// CheckingWithdrawalCeiling returns the maximum amount permitted in a single
// withdrawal.
func CheckingWithdrawalCeiling() decimal.Decimal {
	return decimal.NewFromInt(checkingWithdrawalCeilingUnits)
}

// Account holds a balance and its history log. The balance never goes
// negative and changes only through successful Deposit/Withdraw calls.
// ClientID is a non-owning back-reference to the holder's national ID,
// kept for display purposes only.
type Account struct {
	Number    int             `json:"number"`
	Agency    string          `json:"agency"`
	ClientID  string          `json:"client_id"`
	Balance   decimal.Decimal `json:"balance"`
	History   *History        `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
}

// Deposit adds amount to the balance. The amount must be strictly positive;
// there is no upper bound on deposits.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. Rule order, first match wins:
// amount above the balance fails, a positive amount within the balance
// succeeds, anything else (zero or negative) is invalid.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientBalance
	}
	if amount.Sign() > 0 {
		a.Balance = a.Balance.Sub(amount)
		return nil
	}
	return ErrInvalidAmount
}

// CheckingAccount is the only account variant the bank opens. It layers the
// per-withdrawal ceiling and the lifetime withdrawal-count limit on top of
// the base withdrawal rules.
type CheckingAccount struct {
	Account
	WithdrawalCeiling decimal.Decimal `json:"withdrawal_ceiling"`
	WithdrawalLimit   int             `json:"withdrawal_limit"`
}

// NewCheckingAccount creates a zero-balance checking account with the fixed
// agency code and the default withdrawal policy.
func NewCheckingAccount(number int, clientID string) *CheckingAccount {
	return &CheckingAccount{
		Account: Account{
			Number:    number,
			Agency:    AgencyCode,
			ClientID:  clientID,
			Balance:   decimal.Zero,
			History:   NewHistory(),
			CreatedAt: time.Now(),
		},
		WithdrawalCeiling: CheckingWithdrawalCeiling(),
		WithdrawalLimit:   CheckingWithdrawalLimit,
	}
}

// Snapshot returns a detached value copy of the account, including a copied
// history log, safe to read and serialize after the ledger lock has been
// released. Mutations on the live account do not show through.
func (a *CheckingAccount) Snapshot() *CheckingAccount {
	cp := *a
	cp.History = a.History.Copy()
	return &cp
}

// Withdraw applies the checking-account policy before the base rules. The
// ceiling check strictly precedes the count check: an over-ceiling request
// with zero remaining withdrawals still fails with ErrCeilingExceeded.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.WithdrawalCeiling) {
		return ErrCeilingExceeded
	}
	if a.History.WithdrawalCount() >= a.WithdrawalLimit {
		return ErrWithdrawalsExhausted
	}
	return a.Account.Withdraw(amount)
}

// RemainingWithdrawals reports how many withdrawals the account may still make.
func (a *CheckingAccount) RemainingWithdrawals() int {
	remaining := a.WithdrawalLimit - a.History.WithdrawalCount()
	if remaining < 0 {
		return 0
	}
	return remaining
}
