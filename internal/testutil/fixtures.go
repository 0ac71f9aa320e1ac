package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/ledger"
)

const DefaultInterestRate = "0.05"

func NewRegistry(t *testing.T) *ledger.Registry {
	t.Helper()
	return ledger.NewRegistry(decimal.RequireFromString(DefaultInterestRate))
}

func SeedAccount(t *testing.T, r *ledger.Registry, owner, balance string) *ledger.Account {
	t.Helper()
	account, err := r.CreateAccount(context.Background(), owner, decimal.RequireFromString(balance))
	if err != nil {
		t.Fatalf("seed account for %s: %v", owner, err)
	}
	return account
}
