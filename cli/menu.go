package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"go-bank-ledger/models"
	"go-bank-ledger/services"
)

const menuText = `
╔════════════════════════════════════╗
║            BANK SYSTEM             ║
╠════════════════════════════════════╣
║  [1] Deposit                       ║
║  [2] Withdraw                      ║
║  [3] Statement                     ║
║  [4] New Account                   ║
║  [5] List Accounts                 ║
║  [6] New Client                    ║
║  [q] Quit                          ║
╚════════════════════════════════════╝

=> Choose an option: `

// Menu is the interactive text front-end. It owns no ledger state of its own;
// every action goes through the injected services, and any failure aborts
// only the current action before control returns to the loop.
type Menu struct {
	in           *bufio.Reader
	out          io.Writer
	clients      services.ClientService
	accounts     services.AccountService
	transactions services.TransactionService
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, clients services.ClientService, accounts services.AccountService, transactions services.TransactionService) *Menu {
	return &Menu{
		in:           bufio.NewReader(in),
		out:          out,
		clients:      clients,
		accounts:     accounts,
		transactions: transactions,
	}
}

// Run blocks on the menu loop until the operator quits or input runs out.
func (m *Menu) Run() {
	fmt.Fprintln(m.out, "\n✓ Banking System Started")
	fmt.Fprintf(m.out, "Withdrawal limit: %d\n", models.CheckingWithdrawalLimit)
	fmt.Fprintf(m.out, "Maximum amount per withdrawal: $ %s\n", models.CheckingWithdrawalCeiling().StringFixed(2))

	for {
		option, ok := m.prompt(menuText)
		if !ok {
			return
		}

		switch strings.ToLower(option) {
		case "1":
			m.deposit()
		case "2":
			m.withdraw()
		case "3":
			m.statement()
		case "4":
			m.openAccount()
		case "5":
			m.listAccounts()
		case "6":
			m.registerClient()
		case "q":
			fmt.Fprintln(m.out, "\n"+strings.Repeat("=", 45))
			fmt.Fprintln(m.out, "Thank you for using our banking system!")
			fmt.Fprintln(m.out, strings.Repeat("=", 45))
			return
		default:
			fmt.Fprintln(m.out, "\n✗ Invalid operation! Please select again.")
		}
	}
}

// prompt prints the label and reads one trimmed line. ok is false once the
// input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptAmount reads a decimal amount; a line that does not parse is an
// input-format failure reported to the operator.
func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(m.out, "\n✗ Error! Please enter a valid numeric value.")
		return decimal.Zero, false
	}
	return amount, true
}

// failureMessage turns a domain error into the operator-facing line.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrClientNotFound):
		return "\n✗ Client not found!"
	case errors.Is(err, models.ErrNoAccounts):
		return "\n✗ Client has no accounts!"
	case errors.Is(err, models.ErrInvalidAmount):
		return "\n✗ Operation failed! Invalid amount."
	case errors.Is(err, models.ErrInsufficientBalance):
		return "\n✗ Operation failed! Insufficient balance."
	case errors.Is(err, models.ErrCeilingExceeded):
		return "\n✗ Operation failed! Withdrawal amount exceeds limit."
	case errors.Is(err, models.ErrWithdrawalsExhausted):
		return "\n✗ Operation failed! Maximum number of withdrawals exceeded."
	case errors.Is(err, models.ErrClientAlreadyExists):
		return "\n✗ Client with this national ID already exists!"
	default:
		return "\n✗ Operation failed!"
	}
}

func (m *Menu) deposit() {
	fmt.Fprintln(m.out, "\n--- DEPOSIT ---")
	id, ok := m.prompt("Enter national ID (numbers only): ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Enter deposit amount: $ ")
	if !ok {
		return
	}

	if _, err := m.transactions.Deposit(id, amount); err != nil {
		fmt.Fprintln(m.out, failureMessage(err))
		return
	}
	fmt.Fprintf(m.out, "\n✓ Deposit of $ %s completed successfully!\n", amount.StringFixed(2))
}

func (m *Menu) withdraw() {
	fmt.Fprintln(m.out, "\n--- WITHDRAWAL ---")
	id, ok := m.prompt("Enter national ID (numbers only): ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Enter withdrawal amount: $ ")
	if !ok {
		return
	}

	_, remaining, err := m.transactions.Withdraw(id, amount)
	if err != nil {
		fmt.Fprintln(m.out, failureMessage(err))
		return
	}
	fmt.Fprintf(m.out, "\n✓ Withdrawal of $ %s completed successfully!\n", amount.StringFixed(2))
	fmt.Fprintf(m.out, " Remaining withdrawals: %d\n", remaining)
}

func (m *Menu) statement() {
	id, ok := m.prompt("Enter national ID (numbers only): ")
	if !ok {
		return
	}

	statement, err := m.transactions.Statement(id)
	if err != nil {
		fmt.Fprintln(m.out, failureMessage(err))
		return
	}

	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", 45))
	fmt.Fprintln(m.out, "                 BANK STATEMENT")
	fmt.Fprintln(m.out, strings.Repeat("=", 45))
	if statement.Report == "" {
		fmt.Fprintln(m.out, "\nNo transactions found.")
	} else {
		fmt.Fprintln(m.out, statement.Report)
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 45))
	fmt.Fprintf(m.out, "Current balance: $ %s\n", statement.Balance.StringFixed(2))
	fmt.Fprintln(m.out, strings.Repeat("=", 45))
}

func (m *Menu) openAccount() {
	id, ok := m.prompt("Enter client's national ID: ")
	if !ok {
		return
	}

	if _, err := m.accounts.OpenAccount(id); err != nil {
		fmt.Fprintln(m.out, failureMessage(err))
		return
	}
	fmt.Fprintln(m.out, "\n✓ Account created successfully!")
}

func (m *Menu) listAccounts() {
	summaries := m.accounts.ListAccounts()
	if len(summaries) == 0 {
		fmt.Fprintln(m.out, "\n✗ No accounts registered!")
		return
	}

	for _, s := range summaries {
		fmt.Fprintln(m.out, strings.Repeat("=", 50))
		fmt.Fprintf(m.out, "Agency:     %s\n", s.Agency)
		fmt.Fprintf(m.out, "Account:    %d\n", s.Number)
		fmt.Fprintf(m.out, "Holder:     %s\n", s.HolderName)
	}
}

func (m *Menu) registerClient() {
	id, ok := m.prompt("Enter national ID (numbers only): ")
	if !ok {
		return
	}
	if _, err := m.clients.FindClient(id); err == nil {
		fmt.Fprintln(m.out, "\n✗ Client with this national ID already exists!")
		return
	}

	name, ok := m.prompt("Enter full name: ")
	if !ok {
		return
	}
	birthDate, ok := m.prompt("Enter birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := m.prompt("Enter address (street, number - district - city/state): ")
	if !ok {
		return
	}

	req := &models.CreateClientRequest{
		NationalID: id,
		Name:       name,
		BirthDate:  birthDate,
		Address:    address,
	}
	if _, err := m.clients.RegisterClient(req); err != nil {
		fmt.Fprintln(m.out, failureMessage(err))
		return
	}
	fmt.Fprintln(m.out, "\n✓ Client created successfully!")
}
