package repositories

import (
	"fmt"
	"sync"

	"go-bank-ledger/models"
)

// AccountRepository defines the interface for the in-memory account store.
type AccountRepository interface {
	Create(client *models.Client) (*models.CheckingAccount, error)
	GetByNumber(number int) (*models.CheckingAccount, error)
	GetAll() []*models.CheckingAccount
}

// accountRepositoryImpl is the concrete implementation of AccountRepository.
// Account numbers are assigned sequentially across all clients: the n-th
// account ever created is number n, regardless of who owns it.
type accountRepositoryImpl struct {
	mu       sync.Mutex
	accounts []*models.CheckingAccount
}

// NewAccountRepository creates a new empty in-memory account store.
func NewAccountRepository() AccountRepository {
	return &accountRepositoryImpl{}
}

// Create opens a checking account for the client, assigns the next sequential
// number (1-based) and links the account into the client's owned list.
func (r *accountRepositoryImpl) Create(client *models.Client) (*models.CheckingAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := models.NewCheckingAccount(len(r.accounts)+1, client.NationalID)
	r.accounts = append(r.accounts, account)
	client.AddAccount(account)
	return account, nil
}

// GetByNumber returns the account with the given number.
func (r *accountRepositoryImpl) GetByNumber(number int) (*models.CheckingAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, fmt.Errorf("account %d: %w", number, models.ErrAccountNotFound)
}

// GetAll returns every account in creation order.
func (r *accountRepositoryImpl) GetAll() []*models.CheckingAccount {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.CheckingAccount, len(r.accounts))
	copy(out, r.accounts)
	return out
}
