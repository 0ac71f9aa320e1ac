package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwabena-osei/bankledger/internal/domain"
	"github.com/kwabena-osei/bankledger/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	registry := testutil.NewRegistry(t)

	account, err := registry.CreateAccount(context.Background(), "Alice", dec("1000.00"))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Len(t, account.Number, 8)
	assert.Equal(t, "Alice", account.OwnerName)
	requireDecEqual(t, "1000.00", account.Snapshot().Balance)
	requireDecEqual(t, "0", account.Snapshot().LoanBalance)
	assert.False(t, account.CreatedAt.IsZero())
}

func TestCreateAccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		initial string
		wantErr error
	}{
		{"negative initial balance", "Alice", "-1.00", domain.ErrInvalidAmount},
		{"empty owner name", "", "100.00", domain.ErrInvalidOwnerName},
		{"blank owner name", "   ", "100.00", domain.ErrInvalidOwnerName},
		{"zero initial balance is allowed", "Alice", "0", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			registry := testutil.NewRegistry(t)

			account, err := registry.CreateAccount(context.Background(), tc.owner, dec(tc.initial))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, 0, registry.Count())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, registry.Count())
			requireDecEqual(t, tc.initial, account.Snapshot().Balance)
		})
	}
}

func TestLookup(t *testing.T) {
	registry := testutil.NewRegistry(t)
	account := testutil.SeedAccount(t, registry, "Alice", "100.00")

	got, err := registry.Lookup(account.ID)
	require.NoError(t, err)
	assert.Same(t, account, got)

	_, err = registry.Lookup(uuid.New())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLookupByNumber(t *testing.T) {
	registry := testutil.NewRegistry(t)
	account := testutil.SeedAccount(t, registry, "Alice", "100.00")

	got, err := registry.LookupByNumber(account.Number)
	require.NoError(t, err)
	assert.Same(t, account, got)

	_, err = registry.LookupByNumber("00000000")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListReturnsAccountsInCreationOrder(t *testing.T) {
	registry := testutil.NewRegistry(t)
	alice := testutil.SeedAccount(t, registry, "Alice", "100.00")
	bob := testutil.SeedAccount(t, registry, "Bob", "200.00")
	carol := testutil.SeedAccount(t, registry, "Carol", "300.00")

	accounts := registry.List()

	require.Len(t, accounts, 3)
	assert.Same(t, alice, accounts[0])
	assert.Same(t, bob, accounts[1])
	assert.Same(t, carol, accounts[2])
	assert.Equal(t, 3, registry.Count())
}

func TestAccountNumbersAreUnique(t *testing.T) {
	registry := testutil.NewRegistry(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		account := testutil.SeedAccount(t, registry, "Holder", "0")
		require.False(t, seen[account.Number], "duplicate account number %s", account.Number)
		seen[account.Number] = true
	}
}
