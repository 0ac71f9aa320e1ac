package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountSummary is a point-in-time view of one account, safe to hand to
// callers outside the ledger's locking discipline.
type AccountSummary struct {
	ID          uuid.UUID
	Number      string
	OwnerName   string
	Balance     decimal.Decimal
	LoanBalance decimal.Decimal
	CreatedAt   time.Time
}
