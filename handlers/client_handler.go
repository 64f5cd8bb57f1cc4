// go-bank-ledger/handlers/client_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bank-ledger/models"
	"go-bank-ledger/services"
)

// ClientHandler handles client registration and lookup endpoints.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new instance of ClientHandler.
func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterClient handles POST /clients
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.RegisterClient(&req)
	if err != nil {
		if errors.Is(err, models.ErrClientAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Client with this national ID already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClientByID handles GET /clients/:id
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.clientService.FindClient(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// GetAllClients handles GET /clients
func (h *ClientHandler) GetAllClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.clientService.GetAllClients())
}
