// go-bank-ledger/handlers/transaction_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bank-ledger/models"
	"go-bank-ledger/services"
)

// TransactionHandler handles deposit, withdrawal and statement endpoints.
type TransactionHandler struct {
	transactionService services.TransactionService
}

// NewTransactionHandler creates a new instance of TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// transactionStatus maps domain errors to HTTP status codes: lookup failures
// are 404, rule violations are 400.
func transactionStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrClientNotFound):
		return http.StatusNotFound, "Client not found"
	case errors.Is(err, models.ErrNoAccounts):
		return http.StatusNotFound, "Client has no accounts"
	case errors.Is(err, models.ErrInvalidAmount):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, models.ErrInsufficientBalance):
		return http.StatusBadRequest, "Insufficient balance"
	case errors.Is(err, models.ErrCeilingExceeded):
		return http.StatusBadRequest, "Withdrawal amount exceeds limit"
	case errors.Is(err, models.ErrWithdrawalsExhausted):
		return http.StatusBadRequest, "Maximum number of withdrawals exceeded"
	default:
		return http.StatusInternalServerError, "Failed to process operation"
	}
}

// Deposit handles POST /clients/:id/deposit
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req models.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.transactionService.Deposit(c.Param("id"), req.Amount)
	if err != nil {
		status, msg := transactionStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deposit successful", "account": account})
}

// Withdraw handles POST /clients/:id/withdraw
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req models.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, remaining, err := h.transactionService.Withdraw(c.Param("id"), req.Amount)
	if err != nil {
		status, msg := transactionStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":               "Withdrawal successful",
		"account":               account,
		"remaining_withdrawals": remaining,
	})
}

// Statement handles GET /clients/:id/statement
func (h *TransactionHandler) Statement(c *gin.Context) {
	statement, err := h.transactionService.Statement(c.Param("id"))
	if err != nil {
		status, msg := transactionStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, statement)
}
