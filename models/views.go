// go-bank-ledger/models/views.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSummary is the read-optimised projection used when listing accounts.
type AccountSummary struct {
	Agency     string `json:"agency"`
	Number     int    `json:"number"`
	HolderName string `json:"holder_name"`
}

// Statement is the rendered view of an account's history plus current balance.
// Report is the line-per-entry text from History.GenerateReport; it is empty
// when the account has no transactions yet.
type Statement struct {
	Agency      string          `json:"agency"`
	Number      int             `json:"number"`
	HolderName  string          `json:"holder_name"`
	Report      string          `json:"report"`
	Balance     decimal.Decimal `json:"balance"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// OpenAccountRequest is the payload for opening an account for a client.
type OpenAccountRequest struct {
	NationalID string `json:"national_id" binding:"required"`
}

// AmountRequest is the payload shared by deposit and withdrawal operations.
// Amount validation (strictly positive, ceiling, count limit) belongs to the
// account rules, not the binding layer.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
