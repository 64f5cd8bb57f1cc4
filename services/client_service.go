package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/models"
	"go-bank-ledger/repositories"
)

// ClientService defines the interface for client-related business logic.
type ClientService interface {
	RegisterClient(req *models.CreateClientRequest) (*models.Client, error)
	FindClient(nationalID string) (*models.Client, error)
	GetAllClients() []*models.Client
}

// clientServiceImpl is the concrete implementation of ClientService.
type clientServiceImpl struct {
	clientRepo repositories.ClientRepository
	logger     *logrus.Logger
}

// NewClientService creates a new instance of ClientService.
func NewClientService(clientRepo repositories.ClientRepository, logger *logrus.Logger) ClientService {
	return &clientServiceImpl{clientRepo: clientRepo, logger: logger}
}

func (s *clientServiceImpl) RegisterClient(req *models.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		NationalID: req.NationalID,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Address:    req.Address,
		CreatedAt:  time.Now(),
	}

	if err := s.clientRepo.Create(client); err != nil {
		s.logger.WithField("national_id", req.NationalID).Warn("client registration rejected")
		return nil, fmt.Errorf("failed to register client: %w", err)
	}

	s.logger.WithField("national_id", client.NationalID).Info("client registered")
	return client, nil
}

func (s *clientServiceImpl) FindClient(nationalID string) (*models.Client, error) {
	client, err := s.clientRepo.GetByNationalID(nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

func (s *clientServiceImpl) GetAllClients() []*models.Client {
	return s.clientRepo.GetAll()
}
