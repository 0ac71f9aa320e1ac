package cli

import (
	"errors"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/domain"
)

var errNotANumber = errors.New("not a number")

// money renders a decimal amount in the configured currency, e.g. "$1,575.00".
func (s *Shell) money(d decimal.Decimal) string {
	minor := d.Shift(int32(s.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, s.currency.Code).Display()
}

func kindLabel(kind domain.TransactionKind) string {
	switch kind {
	case domain.TransactionKindAccountCreated:
		return "Account Created"
	case domain.TransactionKindDeposit:
		return "Deposit"
	case domain.TransactionKindWithdraw:
		return "Withdraw"
	case domain.TransactionKindInterestAdded:
		return "Interest Added"
	case domain.TransactionKindLoanTaken:
		return "Loan Taken"
	case domain.TransactionKindLoanRepaid:
		return "Loan Repaid"
	case domain.TransactionKindTransferOut:
		return "Transfer Out"
	case domain.TransactionKindTransferIn:
		return "Transfer In"
	default:
		return string(kind)
	}
}

// userMessage translates ledger errors into user-facing text. Unexpected
// errors get a generic line so internals never leak into the menu.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errNotANumber):
		return "Enter a numeric amount."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be greater than zero."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient balance."
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, domain.ErrSelfTransfer):
		return "Sender and recipient must be different accounts."
	case errors.Is(err, domain.ErrInvalidOwnerName):
		return "Account holder name must not be empty."
	default:
		return "Something went wrong. Try again."
	}
}
