// go-bank-ledger/routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bank-ledger/handlers"
)

// Handlers are initialized in main.go before SetupRoutes runs.
var (
	ClientHandler      *handlers.ClientHandler
	AccountHandler     *handlers.AccountHandler
	TransactionHandler *handlers.TransactionHandler
)

// SetupRoutes registers every API route of the application.
func SetupRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Client registry
	router.POST("/clients", ClientHandler.RegisterClient)
	router.GET("/clients", ClientHandler.GetAllClients)
	router.GET("/clients/:id", ClientHandler.GetClientByID)

	// Accounts
	router.POST("/accounts", AccountHandler.OpenAccount)
	router.GET("/accounts", AccountHandler.ListAccounts)

	// Transactions operate on the client's first account
	router.POST("/clients/:id/deposit", TransactionHandler.Deposit)
	router.POST("/clients/:id/withdraw", TransactionHandler.Withdraw)
	router.GET("/clients/:id/statement", TransactionHandler.Statement)
}
