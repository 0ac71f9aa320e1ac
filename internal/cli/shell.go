// Package cli implements the interactive menu shell. It owns all prompting,
// parsing, and rendering; the ledger itself never performs I/O.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/domain"
	"github.com/kwabena-osei/bankledger/internal/ledger"
)

type Shell struct {
	registry *ledger.Registry
	scanner  *bufio.Scanner
	out      io.Writer
	currency *money.Currency
}

func NewShell(registry *ledger.Registry, in io.Reader, out io.Writer, currencyCode string) *Shell {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(money.USD)
	}
	return &Shell{
		registry: registry,
		scanner:  bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// Run drives the main menu until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printf("\nWelcome to the Bank System\n")
		s.printf("  1) Create account\n")
		s.printf("  2) Access account\n")
		s.printf("  3) Admin dashboard\n")
		s.printf("  4) Exit\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.createAccount(ctx)
		case "2":
			if !s.accessAccount(ctx) {
				return nil
			}
		case "3":
			s.adminDashboard()
		case "4":
			s.printf("Goodbye.\n")
			return nil
		default:
			s.printf("Invalid choice. Try again.\n")
		}
	}
}

func (s *Shell) createAccount(ctx context.Context) {
	name, ok := s.prompt("Enter account holder's name: ")
	if !ok {
		return
	}
	initial, ok, err := s.promptAmount("Enter initial deposit amount: ")
	if !ok {
		return
	}
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return
	}

	account, err := s.registry.CreateAccount(ctx, name, initial)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			s.printf("Initial deposit must not be negative.\n")
			return
		}
		s.printf("%s\n", userMessage(err))
		return
	}
	s.printf("Account created. Your account number is %s\n", account.Number)
}

// accessAccount returns false only when input is exhausted.
func (s *Shell) accessAccount(ctx context.Context) bool {
	number, ok := s.prompt("Enter your account number: ")
	if !ok {
		return false
	}
	account, err := s.registry.LookupByNumber(number)
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return true
	}
	return s.accountMenu(ctx, account)
}

func (s *Shell) accountMenu(ctx context.Context, account *ledger.Account) bool {
	for {
		s.printf("\nAccount Menu (%s)\n", account.OwnerName)
		s.printf("  1) Deposit\n")
		s.printf("  2) Withdraw\n")
		s.printf("  3) Check balance\n")
		s.printf("  4) Transaction history\n")
		s.printf("  5) Apply interest\n")
		s.printf("  6) Take loan\n")
		s.printf("  7) Repay loan\n")
		s.printf("  8) Transfer money\n")
		s.printf("  9) Back\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			s.deposit(account)
		case "2":
			s.withdraw(account)
		case "3":
			s.showBalance(account)
		case "4":
			s.showHistory(account)
		case "5":
			s.applyInterest(account)
		case "6":
			s.takeLoan(account)
		case "7":
			s.repayLoan(account)
		case "8":
			s.transfer(ctx, account)
		case "9":
			return true
		default:
			s.printf("Invalid choice. Try again.\n")
		}
	}
}

func (s *Shell) deposit(account *ledger.Account) {
	amount, ok, err := s.promptAmount("Enter deposit amount: ")
	if !ok || err != nil {
		s.reportInputErr(ok, err)
		return
	}
	rec, err := account.Deposit(amount)
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return
	}
	s.printf("%s deposited. New balance: %s\n", s.money(amount), s.money(rec.Balance))
}

func (s *Shell) withdraw(account *ledger.Account) {
	amount, ok, err := s.promptAmount("Enter withdrawal amount: ")
	if !ok || err != nil {
		s.reportInputErr(ok, err)
		return
	}
	rec, err := account.Withdraw(amount)
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return
	}
	s.printf("%s withdrawn. New balance: %s\n", s.money(amount), s.money(rec.Balance))
}

func (s *Shell) showBalance(account *ledger.Account) {
	snap := account.Snapshot()
	s.printf("Balance for %s: %s\n", snap.OwnerName, s.money(snap.Balance))
	s.printf("Loan balance: %s\n", s.money(snap.LoanBalance))
}

func (s *Shell) showHistory(account *ledger.Account) {
	snap := account.Snapshot()
	s.printf("\nTransaction history for %s (account %s)\n", snap.OwnerName, snap.Number)
	for _, rec := range account.History() {
		s.printf("%s | %-15s | Amount: %12s | Balance: %12s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			kindLabel(rec.Kind),
			s.money(rec.Amount),
			s.money(rec.Balance),
		)
	}
}

func (s *Shell) applyInterest(account *ledger.Account) {
	rec := account.ApplyInterest(s.registry.InterestRate())
	s.printf("Interest of %s applied. New balance: %s\n", s.money(rec.Amount), s.money(rec.Balance))
}

func (s *Shell) takeLoan(account *ledger.Account) {
	amount, ok, err := s.promptAmount("Enter loan amount: ")
	if !ok || err != nil {
		s.reportInputErr(ok, err)
		return
	}
	rec, err := account.TakeLoan(amount)
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return
	}
	s.printf("Loan of %s approved. New balance: %s\n", s.money(amount), s.money(rec.Balance))
}

func (s *Shell) repayLoan(account *ledger.Account) {
	amount, ok, err := s.promptAmount("Enter repayment amount: ")
	if !ok || err != nil {
		s.reportInputErr(ok, err)
		return
	}
	rec, err := account.RepayLoan(amount)
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return
	}
	paid := rec.Amount.Neg()
	if paid.LessThan(amount) {
		s.printf("Repayment capped at the outstanding loan of %s.\n", s.money(paid))
	}
	remaining := account.Snapshot().LoanBalance
	s.printf("Loan repayment of %s successful. Remaining loan: %s\n", s.money(paid), s.money(remaining))
}

func (s *Shell) transfer(ctx context.Context, account *ledger.Account) {
	number, ok := s.prompt("Enter recipient's account number: ")
	if !ok {
		return
	}
	recipient, err := s.registry.LookupByNumber(number)
	if err != nil {
		s.printf("Recipient %s\n", strings.ToLower(userMessage(err)))
		return
	}

	amount, ok, err := s.promptAmount("Enter transfer amount: ")
	if !ok || err != nil {
		s.reportInputErr(ok, err)
		return
	}

	receipt, err := s.registry.Transfer(ctx, account.ID, recipient.ID, amount)
	if err != nil {
		s.printf("%s\n", userMessage(err))
		return
	}
	s.printf("Transfer of %s to %s successful. New balance: %s\n",
		s.money(amount), recipient.OwnerName, s.money(receipt.SenderBalance))
}

func (s *Shell) adminDashboard() {
	accounts := s.registry.List()
	s.printf("\nAdmin Dashboard - All Accounts\n")
	if len(accounts) == 0 {
		s.printf("No accounts found.\n")
		return
	}
	for _, account := range accounts {
		snap := account.Snapshot()
		s.printf("Account: %s | Name: %s | Balance: %s | Loan: %s\n",
			snap.Number, snap.OwnerName, s.money(snap.Balance), s.money(snap.LoanBalance))
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	s.printf("%s", label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *Shell) promptAmount(label string) (decimal.Decimal, bool, error) {
	raw, ok := s.prompt(label)
	if !ok {
		return decimal.Zero, false, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("promptAmount: %q: %w", raw, errNotANumber)
	}
	return amount, true, nil
}

func (s *Shell) reportInputErr(ok bool, err error) {
	if ok && err != nil {
		s.printf("%s\n", userMessage(err))
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
