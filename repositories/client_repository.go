package repositories

import (
	"fmt"
	"sync"

	"go-bank-ledger/models"
)

// ClientRepository defines the interface for the in-memory client registry.
// The registry is append-only: no update or delete operation exists.
type ClientRepository interface {
	Create(client *models.Client) error
	GetByNationalID(nationalID string) (*models.Client, error)
	GetAll() []*models.Client
}

// clientRepositoryImpl is the concrete implementation of ClientRepository.
// Clients are kept in an ordered slice; lookups are a linear scan. The
// dataset is a handful of entries, so no index is warranted.
type clientRepositoryImpl struct {
	mu      sync.Mutex
	clients []*models.Client
}

// NewClientRepository creates a new empty in-memory client registry.
func NewClientRepository() ClientRepository {
	return &clientRepositoryImpl{}
}

// Create registers a new client. A national ID already present in the
// registry is rejected and the registry is left unchanged.
func (r *clientRepositoryImpl) Create(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.NationalID == client.NationalID {
			return fmt.Errorf("national ID %s: %w", client.NationalID, models.ErrClientAlreadyExists)
		}
	}
	r.clients = append(r.clients, client)
	return nil
}

// GetByNationalID returns the first client matching the national ID.
func (r *clientRepositoryImpl) GetByNationalID(nationalID string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.NationalID == nationalID {
			return c, nil
		}
	}
	return nil, fmt.Errorf("national ID %s: %w", nationalID, models.ErrClientNotFound)
}

// GetAll returns the registered clients in insertion order.
func (r *clientRepositoryImpl) GetAll() []*models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Client, len(r.clients))
	copy(out, r.clients)
	return out
}
