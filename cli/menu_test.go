package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/repositories"
	"go-bank-ledger/services"
)

// runSession feeds a scripted input to a fresh menu and returns its output.
func runSession(t *testing.T, input string) string {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	clientRepo := repositories.NewClientRepository()
	accountRepo := repositories.NewAccountRepository()
	ledger := services.NewLedger()
	clients := services.NewClientService(clientRepo, logger)
	accounts := services.NewAccountService(clientRepo, accountRepo, ledger, logger)
	transactions := services.NewTransactionService(clientRepo, accounts, ledger, logger)

	var out bytes.Buffer
	menu := NewMenu(strings.NewReader(input), &out, clients, accounts, transactions)
	menu.Run()
	return out.String()
}

func TestSessionEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"6", // new client
		"111",
		"Alice",
		"01-01-1990",
		"Main St, 1 - Center - Springfield/SP",
		"4", // new account
		"111",
		"1", // deposit
		"111",
		"200.00",
		"2", // withdraw
		"111",
		"50.00",
		"3", // statement
		"111",
		"5", // list accounts
		"q",
	}, "\n") + "\n"

	out := runSession(t, input)

	for _, want := range []string{
		"✓ Client created successfully!",
		"✓ Account created successfully!",
		"✓ Deposit of $ 200.00 completed successfully!",
		"✓ Withdrawal of $ 50.00 completed successfully!",
		"Remaining withdrawals: 2",
		"BANK STATEMENT",
		"Deposit: $ 200.00",
		"Withdrawal: $ 50.00",
		"Current balance: $ 150.00",
		"Agency:     0001",
		"Account:    1",
		"Holder:     Alice",
		"Thank you for using our banking system!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionInvalidAmountRecovers(t *testing.T) {
	input := strings.Join([]string{
		"6",
		"111",
		"Alice",
		"01-01-1990",
		"Main St, 1",
		"4",
		"111",
		"1", // deposit with a non-numeric amount
		"111",
		"abc",
		"3", // the loop keeps going; statement shows untouched state
		"111",
		"q",
	}, "\n") + "\n"

	out := runSession(t, input)

	if !strings.Contains(out, "✗ Error! Please enter a valid numeric value.") {
		t.Fatalf("missing input-format error:\n%s", out)
	}
	if !strings.Contains(out, "No transactions found.") {
		t.Fatalf("state must stay unchanged after a bad amount:\n%s", out)
	}
	if !strings.Contains(out, "Current balance: $ 0.00") {
		t.Fatalf("balance must stay zero:\n%s", out)
	}
}

func TestSessionFailureMessages(t *testing.T) {
	input := strings.Join([]string{
		"1", // deposit for an unknown client
		"999",
		"10.00",
		"5", // no accounts registered yet
		"6", // register, then duplicate
		"111",
		"Alice",
		"01-01-1990",
		"Main St, 1",
		"6",
		"111",
		"2", // withdraw with no account opened
		"111",
		"10.00",
		"x", // invalid option
		"q",
	}, "\n") + "\n"

	out := runSession(t, input)

	for _, want := range []string{
		"✗ Client not found!",
		"✗ No accounts registered!",
		"✗ Client with this national ID already exists!",
		"✗ Client has no accounts!",
		"✗ Invalid operation! Please select again.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
