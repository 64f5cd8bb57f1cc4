package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/models"
	"go-bank-ledger/repositories"
)

// AccountService defines the interface for account-related business logic.
type AccountService interface {
	OpenAccount(nationalID string) (*models.CheckingAccount, error)
	FirstAccount(client *models.Client) (*models.CheckingAccount, error)
	ListAccounts() []models.AccountSummary
}

// accountServiceImpl is the concrete implementation of AccountService.
type accountServiceImpl struct {
	clientRepo  repositories.ClientRepository
	accountRepo repositories.AccountRepository
	ledger      *Ledger
	logger      *logrus.Logger
}

// NewAccountService creates a new instance of AccountService. The ledger
// lock must be the same instance the transaction service is wired with.
func NewAccountService(clientRepo repositories.ClientRepository, accountRepo repositories.AccountRepository, ledger *Ledger, logger *logrus.Logger) AccountService {
	return &accountServiceImpl{clientRepo: clientRepo, accountRepo: accountRepo, ledger: ledger, logger: logger}
}

// OpenAccount creates a checking account owned by the client with the given
// national ID. The account number is globally sequential, starting at 1.
// The returned account is a detached snapshot.
func (s *accountServiceImpl) OpenAccount(nationalID string) (*models.CheckingAccount, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	client, err := s.clientRepo.GetByNationalID(nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	account, err := s.accountRepo.Create(client)
	if err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"national_id": nationalID,
		"account":     account.Number,
	}).Info("account opened")
	return account.Snapshot(), nil
}

// FirstAccount returns the client's live first account. The data model
// supports several accounts per client, but every operation goes through
// index 0. The dispatcher calls this while holding the ledger lock.
func (s *accountServiceImpl) FirstAccount(client *models.Client) (*models.CheckingAccount, error) {
	if len(client.Accounts) == 0 {
		return nil, fmt.Errorf("national ID %s: %w", client.NationalID, models.ErrNoAccounts)
	}
	return client.Accounts[0], nil
}

// ListAccounts returns agency, number and holder name for every account,
// in creation order.
func (s *accountServiceImpl) ListAccounts() []models.AccountSummary {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	accounts := s.accountRepo.GetAll()
	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		holder := a.ClientID
		if client, err := s.clientRepo.GetByNationalID(a.ClientID); err == nil {
			holder = client.Name
		}
		summaries = append(summaries, models.AccountSummary{
			Agency:     a.Agency,
			Number:     a.Number,
			HolderName: holder,
		})
	}
	return summaries
}
