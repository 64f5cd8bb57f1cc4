package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-bank-ledger/cli"
	"go-bank-ledger/config"
	"go-bank-ledger/handlers"
	"go-bank-ledger/repositories"
	"go-bank-ledger/routes"
	"go-bank-ledger/services"
)

func main() {
	serve := flag.Bool("serve", false, "Run the HTTP API instead of the interactive menu")
	flag.Parse()

	cfg := config.LoadConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Initialize Repositories (whole ledger state lives here, in memory)
	clientRepo := repositories.NewClientRepository()
	accountRepo := repositories.NewAccountRepository()

	// Initialize Services (one shared ledger lock across both)
	ledger := services.NewLedger()
	clientService := services.NewClientService(clientRepo, logger)
	accountService := services.NewAccountService(clientRepo, accountRepo, ledger, logger)
	transactionService := services.NewTransactionService(clientRepo, accountService, ledger, logger)

	if *serve {
		// Initialize Handlers
		routes.ClientHandler = handlers.NewClientHandler(clientService)
		routes.AccountHandler = handlers.NewAccountHandler(accountService)
		routes.TransactionHandler = handlers.NewTransactionHandler(transactionService)

		gin.SetMode(cfg.GinMode)
		router := gin.Default()
		routes.SetupRoutes(router)

		logger.Infof("Starting HTTP API on port %s", cfg.ServerPort)
		if err := router.Run(":" + cfg.ServerPort); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
		return
	}

	menu := cli.NewMenu(os.Stdin, os.Stdout, clientService, accountService, transactionService)
	menu.Run()
}
