package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/domain"
)

// Account holds the ledger state for a single holder: cash balance, loan
// balance, and an append-only transaction log. Every mutation is serialized
// by the embedded mutex and appends exactly one record per touched account,
// so concurrent callers never observe a balance that disagrees with the log.
type Account struct {
	ID        uuid.UUID
	Number    string
	OwnerName string
	CreatedAt time.Time

	mu           sync.Mutex
	balance      decimal.Decimal
	loanBalance  decimal.Decimal
	transactions []domain.TransactionRecord
}

func newAccount(ownerName, number string, initialBalance decimal.Decimal, now time.Time) *Account {
	a := &Account{
		ID:        uuid.New(),
		Number:    number,
		OwnerName: ownerName,
		CreatedAt: now,
		balance:   initialBalance,
	}
	a.log(domain.TransactionKindAccountCreated, initialBalance, now)
	return a
}

// log appends a record carrying the balance after the mutation. Callers must
// hold mu; newAccount is exempt because the account is not yet published.
func (a *Account) log(kind domain.TransactionKind, amount decimal.Decimal, now time.Time) domain.TransactionRecord {
	rec := domain.TransactionRecord{
		Kind:      kind,
		Amount:    amount,
		Balance:   a.balance,
		CreatedAt: now,
	}
	a.transactions = append(a.transactions, rec)
	return rec
}

func (a *Account) Deposit(amount decimal.Decimal) (domain.TransactionRecord, error) {
	if amount.Sign() <= 0 {
		return domain.TransactionRecord{}, fmt.Errorf("Deposit: %w", domain.ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return a.log(domain.TransactionKindDeposit, amount, time.Now().UTC()), nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (domain.TransactionRecord, error) {
	if amount.Sign() <= 0 {
		return domain.TransactionRecord{}, fmt.Errorf("Withdraw: %w", domain.ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return domain.TransactionRecord{}, fmt.Errorf("Withdraw: %w", domain.ErrInsufficientFunds)
	}

	a.balance = a.balance.Sub(amount)
	return a.log(domain.TransactionKindWithdraw, amount.Neg(), time.Now().UTC()), nil
}

// ApplyInterest credits balance * rate. There is no failure path: a zero or
// negative balance simply yields zero or negative interest.
func (a *Account) ApplyInterest(rate decimal.Decimal) domain.TransactionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	interest := a.balance.Mul(rate)
	a.balance = a.balance.Add(interest)
	return a.log(domain.TransactionKindInterestAdded, interest, time.Now().UTC())
}

// TakeLoan credits the loan amount to the cash balance and records it as
// outstanding debt.
func (a *Account) TakeLoan(amount decimal.Decimal) (domain.TransactionRecord, error) {
	if amount.Sign() <= 0 {
		return domain.TransactionRecord{}, fmt.Errorf("TakeLoan: %w", domain.ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.loanBalance = a.loanBalance.Add(amount)
	a.balance = a.balance.Add(amount)
	return a.log(domain.TransactionKindLoanTaken, amount, time.Now().UTC()), nil
}

// RepayLoan pays down the outstanding loan. An amount above the loan balance
// is capped to a full payoff rather than rejected; the returned record's
// Amount is the negated amount actually paid.
func (a *Account) RepayLoan(amount decimal.Decimal) (domain.TransactionRecord, error) {
	if amount.Sign() <= 0 {
		return domain.TransactionRecord{}, fmt.Errorf("RepayLoan: %w", domain.ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.loanBalance) {
		amount = a.loanBalance
	}

	a.loanBalance = a.loanBalance.Sub(amount)
	a.balance = a.balance.Sub(amount)
	return a.log(domain.TransactionKindLoanRepaid, amount.Neg(), time.Now().UTC()), nil
}

// transferTo moves amount to recipient and appends the paired transfer-out /
// transfer-in records. Callers must hold both accounts' mutexes; the registry
// acquires them in ascending ID order.
func (a *Account) transferTo(recipient *Account, amount decimal.Decimal, now time.Time) (out, in domain.TransactionRecord, err error) {
	if amount.GreaterThan(a.balance) {
		return out, in, fmt.Errorf("transferTo: %w", domain.ErrInsufficientFunds)
	}

	a.balance = a.balance.Sub(amount)
	recipient.balance = recipient.balance.Add(amount)

	out = a.log(domain.TransactionKindTransferOut, amount.Neg(), now)
	in = recipient.log(domain.TransactionKindTransferIn, amount, now)
	return out, in, nil
}

func (a *Account) Snapshot() domain.AccountSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	return domain.AccountSummary{
		ID:          a.ID,
		Number:      a.Number,
		OwnerName:   a.OwnerName,
		Balance:     a.balance,
		LoanBalance: a.loanBalance,
		CreatedAt:   a.CreatedAt,
	}
}

// History returns a copy of the transaction log in append order.
func (a *Account) History() []domain.TransactionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.TransactionRecord, len(a.transactions))
	copy(out, a.transactions)
	return out
}
