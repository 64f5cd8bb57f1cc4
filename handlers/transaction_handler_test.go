package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-bank-ledger/models"
	"go-bank-ledger/repositories"
	"go-bank-ledger/services"
)

// newTestRouter wires a fresh in-memory stack behind a gin engine.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	clientRepo := repositories.NewClientRepository()
	accountRepo := repositories.NewAccountRepository()
	ledger := services.NewLedger()
	clients := services.NewClientService(clientRepo, logger)
	accounts := services.NewAccountService(clientRepo, accountRepo, ledger, logger)
	transactions := services.NewTransactionService(clientRepo, accounts, ledger, logger)

	clientHandler := NewClientHandler(clients)
	accountHandler := NewAccountHandler(accounts)
	transactionHandler := NewTransactionHandler(transactions)

	router := gin.New()
	router.POST("/clients", clientHandler.RegisterClient)
	router.GET("/clients/:id", clientHandler.GetClientByID)
	router.POST("/accounts", accountHandler.OpenAccount)
	router.GET("/accounts", accountHandler.ListAccounts)
	router.POST("/clients/:id/deposit", transactionHandler.Deposit)
	router.POST("/clients/:id/withdraw", transactionHandler.Withdraw)
	router.GET("/clients/:id/statement", transactionHandler.Statement)
	return router
}

// do sends one JSON request and returns the recorded response.
func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// setupClientWithAccount registers client 111 and opens account 1.
func setupClientWithAccount(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := do(t, router, http.MethodPost, "/clients",
		`{"national_id":"111","name":"Alice","birth_date":"01-01-1990","address":"Main St, 1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register client: status %d: %s", w.Code, w.Body.String())
	}
	w = do(t, router, http.MethodPost, "/accounts", `{"national_id":"111"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("open account: status %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterClientDuplicateConflict(t *testing.T) {
	router := newTestRouter()
	setupClientWithAccount(t, router)

	w := do(t, router, http.MethodPost, "/clients",
		`{"national_id":"111","name":"Impostor","birth_date":"02-02-1992","address":"Elsewhere"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status %d, want 409", w.Code)
	}
}

func TestOpenAccountUnknownClient(t *testing.T) {
	router := newTestRouter()
	w := do(t, router, http.MethodPost, "/accounts", `{"national_id":"999"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestDepositAndWithdrawRoundTrip(t *testing.T) {
	router := newTestRouter()
	setupClientWithAccount(t, router)

	w := do(t, router, http.MethodPost, "/clients/111/deposit", `{"amount":200.00}`)
	if w.Code != http.StatusOK {
		t.Fatalf("deposit: status %d: %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodPost, "/clients/111/withdraw", `{"amount":50.00}`)
	if w.Code != http.StatusOK {
		t.Fatalf("withdraw: status %d: %s", w.Code, w.Body.String())
	}
	var withdrawResp struct {
		RemainingWithdrawals int `json:"remaining_withdrawals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &withdrawResp); err != nil {
		t.Fatal(err)
	}
	if withdrawResp.RemainingWithdrawals != 2 {
		t.Fatalf("remaining_withdrawals = %d, want 2", withdrawResp.RemainingWithdrawals)
	}

	w = do(t, router, http.MethodGet, "/clients/111/statement", "")
	if w.Code != http.StatusOK {
		t.Fatalf("statement: status %d: %s", w.Code, w.Body.String())
	}
	var statement models.Statement
	if err := json.Unmarshal(w.Body.Bytes(), &statement); err != nil {
		t.Fatal(err)
	}
	if statement.Balance.StringFixed(2) != "150.00" {
		t.Fatalf("balance = %s, want 150.00", statement.Balance.StringFixed(2))
	}
	if !strings.Contains(statement.Report, "Deposit: $ 200.00") ||
		!strings.Contains(statement.Report, "Withdrawal: $ 50.00") {
		t.Fatalf("unexpected report: %q", statement.Report)
	}
}

func TestWithdrawRuleFailures(t *testing.T) {
	router := newTestRouter()
	setupClientWithAccount(t, router)

	if w := do(t, router, http.MethodPost, "/clients/111/deposit", `{"amount":1000.00}`); w.Code != http.StatusOK {
		t.Fatalf("deposit: status %d", w.Code)
	}

	// Over the per-withdrawal ceiling.
	w := do(t, router, http.MethodPost, "/clients/111/withdraw", `{"amount":600.00}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("over-ceiling withdraw: status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "exceeds limit") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// Over the balance.
	w = do(t, router, http.MethodPost, "/clients/999/withdraw", `{"amount":10.00}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown client withdraw: status %d, want 404", w.Code)
	}
}

func TestListAccounts(t *testing.T) {
	router := newTestRouter()
	setupClientWithAccount(t, router)

	w := do(t, router, http.MethodGet, "/accounts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var summaries []models.AccountSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summaries); err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 || summaries[0].Number != 1 || summaries[0].HolderName != "Alice" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}
