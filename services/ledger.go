package services

import "sync"

// Ledger is the aggregate-root lock shared by every service that touches
// account state. One mutex serializes account openings, balance mutations
// and statement reads, so the HTTP surface can handle requests concurrently
// without partial updates becoming visible.
type Ledger struct {
	mu sync.Mutex
}

// NewLedger creates the shared lock for one wiring of the services.
func NewLedger() *Ledger {
	return &Ledger{}
}
