package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindAccountCreated TransactionKind = "account_created"
	TransactionKindDeposit        TransactionKind = "deposit"
	TransactionKindWithdraw       TransactionKind = "withdraw"
	TransactionKindInterestAdded  TransactionKind = "interest_added"
	TransactionKindLoanTaken      TransactionKind = "loan_taken"
	TransactionKindLoanRepaid     TransactionKind = "loan_repaid"
	TransactionKindTransferOut    TransactionKind = "transfer_out"
	TransactionKindTransferIn     TransactionKind = "transfer_in"
)

// TransactionRecord is one immutable entry in an account's log. Amount is
// signed: debits (withdrawals, loan repayments, outgoing transfers) are
// negative, so an account's balance always equals the sum of the amounts in
// its log. Balance is the account balance immediately after the event.
type TransactionRecord struct {
	Kind      TransactionKind
	Amount    decimal.Decimal
	Balance   decimal.Decimal
	CreatedAt time.Time
}
