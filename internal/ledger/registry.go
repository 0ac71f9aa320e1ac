package ledger

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/domain"
	"github.com/kwabena-osei/bankledger/internal/logging"
)

const accountNumberLength = 8

// Registry owns the collection of accounts. It generates identifiers at
// creation, resolves lookups for the shell, and coordinates transfers, which
// are the only operations touching two accounts at once.
type Registry struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*Account
	byNumber map[string]uuid.UUID
	order    []uuid.UUID

	interestRate decimal.Decimal
}

func NewRegistry(interestRate decimal.Decimal) *Registry {
	return &Registry{
		accounts:     make(map[uuid.UUID]*Account),
		byNumber:     make(map[string]uuid.UUID),
		interestRate: interestRate,
	}
}

// InterestRate is the fixed per-application rate used by ApplyInterest.
func (r *Registry) InterestRate() decimal.Decimal {
	return r.interestRate
}

// CreateAccount registers a new account and seeds its transaction log with an
// account-created record carrying the initial balance. A negative initial
// balance is rejected; zero is allowed.
func (r *Registry) CreateAccount(ctx context.Context, ownerName string, initialBalance decimal.Decimal) (*Account, error) {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(ownerName) == "" {
		return nil, fmt.Errorf("CreateAccount: %w", domain.ErrInvalidOwnerName)
	}
	if initialBalance.Sign() < 0 {
		return nil, fmt.Errorf("CreateAccount: initial balance: %w", domain.ErrInvalidAmount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number, err := r.unusedAccountNumber()
	if err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}

	account := newAccount(ownerName, number, initialBalance, time.Now().UTC())
	r.accounts[account.ID] = account
	r.byNumber[account.Number] = account.ID
	r.order = append(r.order, account.ID)

	log.Info("account created",
		"account_id", account.ID,
		"account_number", account.Number,
		"owner", account.OwnerName,
		"initial_balance", initialBalance,
	)

	return account, nil
}

func (r *Registry) Lookup(id uuid.UUID) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("Lookup: %s: %w", id, domain.ErrAccountNotFound)
	}
	return account, nil
}

// LookupByNumber resolves a human-entered account number.
func (r *Registry) LookupByNumber(number string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("LookupByNumber: %s: %w", number, domain.ErrAccountNotFound)
	}
	return r.accounts[id], nil
}

// List returns all accounts in creation order, for administrative views.
func (r *Registry) List() []*Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.accounts[id])
	}
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// unusedAccountNumber rolls numeric account numbers until one is free.
// Callers must hold mu.
func (r *Registry) unusedAccountNumber() (string, error) {
	for {
		number, err := generateAccountNumber()
		if err != nil {
			return "", err
		}
		if _, taken := r.byNumber[number]; !taken {
			return number, nil
		}
	}
}

func generateAccountNumber() (string, error) {
	digits := make([]byte, accountNumberLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generateAccountNumber: %w", err)
		}
		digits[i] = '0' + byte(n.Int64())
	}
	return string(digits), nil
}
