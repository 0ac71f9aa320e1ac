package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/domain"
	"github.com/kwabena-osei/bankledger/internal/logging"
)

// TransferReceipt reports a completed transfer: the paired log records and
// the balances both accounts were left with.
type TransferReceipt struct {
	Out              domain.TransactionRecord
	In               domain.TransactionRecord
	SenderBalance    decimal.Decimal
	RecipientBalance decimal.Decimal
}

// Transfer moves amount from sender to recipient as a paired debit/credit.
// Both accounts are locked in ascending identifier order so concurrent
// transfers in opposite directions cannot deadlock, and no caller can observe
// a debit without its matching credit.
func (r *Registry) Transfer(ctx context.Context, senderID, recipientID uuid.UUID, amount decimal.Decimal) (*TransferReceipt, error) {
	log := logging.FromContext(ctx)

	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrInvalidAmount)
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrSelfTransfer)
	}

	sender, err := r.Lookup(senderID)
	if err != nil {
		return nil, fmt.Errorf("Transfer: sender: %w", err)
	}
	recipient, err := r.Lookup(recipientID)
	if err != nil {
		return nil, fmt.Errorf("Transfer: recipient: %w", err)
	}

	unlock := lockInOrder(sender, recipient)
	defer unlock()

	out, in, err := sender.transferTo(recipient, amount, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}

	receipt := &TransferReceipt{
		Out:              out,
		In:               in,
		SenderBalance:    sender.balance,
		RecipientBalance: recipient.balance,
	}

	log.Info("transfer completed",
		"sender_account", sender.Number,
		"recipient_account", recipient.Number,
		"amount", amount,
	)

	return receipt, nil
}

// lockInOrder acquires both account mutexes in ascending ID order and returns
// the matching unlock.
func lockInOrder(a, b *Account) func() {
	first, second := a, b
	if second.ID.String() < first.ID.String() {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
