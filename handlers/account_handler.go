// go-bank-ledger/handlers/account_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bank-ledger/models"
	"go-bank-ledger/services"
)

// AccountHandler handles account opening and listing endpoints.
type AccountHandler struct {
	accountService services.AccountService
}

// NewAccountHandler creates a new instance of AccountHandler.
func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// OpenAccount handles POST /accounts
func (h *AccountHandler) OpenAccount(c *gin.Context) {
	var req models.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountService.OpenAccount(req.NationalID)
	if err != nil {
		if errors.Is(err, models.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open account"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// ListAccounts handles GET /accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.accountService.ListAccounts())
}
