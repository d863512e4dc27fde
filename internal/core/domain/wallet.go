package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the balance-holding account bound 1:1 to an owner.
// Balance is never negative at any committed state. Deactivation is
// soft: it blocks balance mutations but not reads.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Balance   Money     `json:"balance"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWallet creates an empty active wallet for an owner.
func NewWallet(ownerID uuid.UUID, currency Currency) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Balance:   Zero(currency),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanDebit reports whether the wallet holds at least total.
func (w *Wallet) CanDebit(total Money) bool {
	cmp, err := w.Balance.Cmp(total)
	return err == nil && cmp >= 0
}

// HistoryOperation labels the direction of a balance mutation.
type HistoryOperation string

const (
	OperationCredit HistoryOperation = "credit"
	OperationDebit  HistoryOperation = "debit"
)

// WalletHistory is one append-only ledger row documenting a single
// balance mutation, with before/after snapshots linked to the causing
// transaction. Rows are never updated or deleted.
type WalletHistory struct {
	ID            uuid.UUID        `json:"id"`
	WalletID      uuid.UUID        `json:"wallet_id"`
	TransactionID uuid.UUID        `json:"transaction_id"`
	Operation     HistoryOperation `json:"operation_type"`
	Amount        Money            `json:"amount"`
	BalanceBefore Money            `json:"balance_before"`
	BalanceAfter  Money            `json:"balance_after"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewHistoryEntry builds a snapshot row for a mutation that moved the
// wallet from before to after.
func NewHistoryEntry(walletID, txID uuid.UUID, op HistoryOperation, amount, before, after Money) *WalletHistory {
	return &WalletHistory{
		ID:            uuid.New(),
		WalletID:      walletID,
		TransactionID: txID,
		Operation:     op,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CreatedAt:     time.Now().UTC(),
	}
}

// Consistent verifies balance_after = balance_before +/- amount for
// the row's operation.
func (h *WalletHistory) Consistent() bool {
	var expected Money
	var err error
	switch h.Operation {
	case OperationCredit:
		expected, err = h.BalanceBefore.Add(h.Amount)
	case OperationDebit:
		expected, err = h.BalanceBefore.Sub(h.Amount)
	default:
		return false
	}
	if err != nil {
		return false
	}
	return expected == h.BalanceAfter
}
