// go-bank-ledger/models/history.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// statementTimeLayout is the timestamp format used on statement lines.
const statementTimeLayout = "02/01/2006 15:04:05"

// HistoryEntry is the recorded form of a successful transaction. Entries are
// appended exactly once and never mutated or removed.
type HistoryEntry struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// History is the append-only chronological log of one account's successful
// transactions. Insertion order is chronological order; the recorded
// timestamp is informational and never used for re-sorting.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates an empty history log.
func NewHistory() *History {
	return &History{}
}

// AddTransaction appends a snapshot of the transaction, stamped with the time
// of the append.
func (h *History) AddTransaction(t *Transaction) {
	h.entries = append(h.entries, HistoryEntry{
		TransactionID: t.ID,
		Kind:          t.Kind,
		Amount:        t.Amount,
		RecordedAt:    time.Now(),
	})
}

// Copy returns a detached copy of the log.
func (h *History) Copy() *History {
	return &History{entries: h.Entries()}
}

// Entries returns a copy of the log so callers cannot modify the internal slice.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// WithdrawalCount returns how many withdrawals have ever been recorded.
func (h *History) WithdrawalCount() int {
	count := 0
	for _, e := range h.entries {
		if e.Kind == KindWithdrawal {
			count++
		}
	}
	return count
}

// GenerateReport renders the log as one line per entry, e.g.
//
//	[25/12/2025 14:30:00] Deposit: $ 50.00
//
// An empty history renders as the empty string; callers distinguish "no
// transactions" purely by emptiness.
func (h *History) GenerateReport() string {
	var b strings.Builder
	for _, e := range h.entries {
		fmt.Fprintf(&b, "[%s] %s: $ %s\n",
			e.RecordedAt.Format(statementTimeLayout), e.Kind, e.Amount.StringFixed(2))
	}
	return b.String()
}
