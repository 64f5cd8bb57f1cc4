package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-bank-ledger/models"
	"go-bank-ledger/repositories"
)

// TransactionService is the dispatcher the presentation layers talk to: it
// resolves the client and account, constructs the transaction and asks the
// account to validate and apply it.
type TransactionService interface {
	Deposit(nationalID string, amount decimal.Decimal) (*models.CheckingAccount, error)
	Withdraw(nationalID string, amount decimal.Decimal) (*models.CheckingAccount, int, error)
	Statement(nationalID string) (*models.Statement, error)
}

// transactionServiceImpl is the concrete implementation of TransactionService.
// Every operation runs under the shared ledger lock, the same lock account
// opening uses, so balance mutation and history recording stay consistent
// when the HTTP surface handles requests concurrently. Returned accounts are
// detached snapshots taken before the lock is released.
type transactionServiceImpl struct {
	clientRepo repositories.ClientRepository
	accounts   AccountService
	ledger     *Ledger
	logger     *logrus.Logger
}

// NewTransactionService creates a new instance of TransactionService. The
// ledger lock must be the same instance the account service is wired with.
func NewTransactionService(clientRepo repositories.ClientRepository, accounts AccountService, ledger *Ledger, logger *logrus.Logger) TransactionService {
	return &transactionServiceImpl{clientRepo: clientRepo, accounts: accounts, ledger: ledger, logger: logger}
}

// resolveAccount looks up the client by national ID and returns the client's
// first account. The caller holds the ledger lock.
func (s *transactionServiceImpl) resolveAccount(nationalID string) (*models.CheckingAccount, error) {
	client, err := s.clientRepo.GetByNationalID(nationalID)
	if err != nil {
		return nil, err
	}
	return s.accounts.FirstAccount(client)
}

func (s *transactionServiceImpl) Deposit(nationalID string, amount decimal.Decimal) (*models.CheckingAccount, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	account, err := s.resolveAccount(nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to process deposit: %w", err)
	}

	transaction := models.NewDeposit(amount)
	if err := transaction.Register(account); err != nil {
		s.logger.WithFields(logrus.Fields{
			"national_id": nationalID,
			"amount":      amount.StringFixed(2),
		}).Warn("deposit rejected")
		return nil, fmt.Errorf("failed to process deposit: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"national_id": nationalID,
		"account":     account.Number,
		"amount":      amount.StringFixed(2),
	}).Info("deposit completed")
	return account.Snapshot(), nil
}

// Withdraw applies the checking-account withdrawal rules and, on success,
// also reports how many withdrawals remain on the account.
func (s *transactionServiceImpl) Withdraw(nationalID string, amount decimal.Decimal) (*models.CheckingAccount, int, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	account, err := s.resolveAccount(nationalID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to process withdrawal: %w", err)
	}

	transaction := models.NewWithdrawal(amount)
	if err := transaction.Register(account); err != nil {
		s.logger.WithFields(logrus.Fields{
			"national_id": nationalID,
			"amount":      amount.StringFixed(2),
		}).Warn("withdrawal rejected")
		return nil, 0, fmt.Errorf("failed to process withdrawal: %w", err)
	}

	remaining := account.RemainingWithdrawals()
	s.logger.WithFields(logrus.Fields{
		"national_id": nationalID,
		"account":     account.Number,
		"amount":      amount.StringFixed(2),
		"remaining":   remaining,
	}).Info("withdrawal completed")
	return account.Snapshot(), remaining, nil
}

// Statement renders the account's history report together with the current
// balance. An account with no transactions yields an empty report.
func (s *transactionServiceImpl) Statement(nationalID string) (*models.Statement, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	client, err := s.clientRepo.GetByNationalID(nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate statement: %w", err)
	}
	account, err := s.accounts.FirstAccount(client)
	if err != nil {
		return nil, fmt.Errorf("failed to generate statement: %w", err)
	}

	return &models.Statement{
		Agency:      account.Agency,
		Number:      account.Number,
		HolderName:  client.Name,
		Report:      account.History.GenerateReport(),
		Balance:     account.Balance,
		GeneratedAt: time.Now(),
	}, nil
}
