package ports

import (
	"context"
	"time"

	"mobile-money-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HashService handles PIN hashing (Argon2id).
type HashService interface {
	Hash(pin string) (string, error)
	Verify(pin string, hash string) (bool, error)
}

// TransactionCache is the Redis read cache for completed transactions (best-effort).
type TransactionCache interface {
	Get(ctx context.Context, reference string) ([]byte, error) // Returns cached JSON or nil
	Set(ctx context.Context, reference string, value []byte, ttl time.Duration) error
}

// FeePolicy computes the fee for a transaction kind.
type FeePolicy interface {
	FeeFor(kind domain.TransactionType, amount domain.Money) (domain.Money, error)
}

// ReferenceGenerator produces unique human-readable transaction references.
type ReferenceGenerator interface {
	Generate(ctx context.Context, kind domain.TransactionType) (string, error)
}

// LimitTracker consumes agent cash-out limits inside a transaction block.
type LimitTracker interface {
	// TryConsume validates the amount against the agent's daily, monthly and
	// single-transaction limits and increments usage. Runs under FOR UPDATE.
	TryConsume(ctx context.Context, tx pgx.Tx, agentID uuid.UUID, amountCents int64) error
}

// --- Service Ports (Business Logic) ---

// PinService defines PIN credential business logic.
type PinService interface {
	SetPin(ctx context.Context, ownerID uuid.UUID, pin string) error
	// CheckPin verifies the PIN, tracking attempts and lockout.
	CheckPin(ctx context.Context, ownerID uuid.UUID, pin string) error
	Status(ctx context.Context, ownerID uuid.UUID) (*PinStatus, error)
}

// PinStatus is the externally visible PIN credential state.
type PinStatus struct {
	IsSet       bool
	Attempts    int
	LockedUntil *time.Time
}

// LedgerService defines the core transaction processing logic.
type LedgerService interface {
	SubmitTransfer(ctx context.Context, req TransferRequest) (*domain.Transaction, error)
	SubmitTopUp(ctx context.Context, req TopUpRequest) (*domain.Transaction, error)
	SubmitBillPayment(ctx context.Context, req BillPaymentRequest) (*domain.Transaction, error)
	SubmitCardDeposit(ctx context.Context, req CardDepositRequest) (*domain.Transaction, error)
	SubmitMerchantPayment(ctx context.Context, req MerchantPaymentRequest) (*domain.Transaction, error)
	SubmitAgentWithdrawal(ctx context.Context, req AgentWithdrawalRequest) (*AgentWithdrawalResult, error)
	ConfirmAgentWithdrawal(ctx context.Context, reference string, agentOwnerID uuid.UUID) (*domain.Transaction, error)
	CancelAgentWithdrawal(ctx context.Context, reference string, actorID uuid.UUID) (*domain.Transaction, error)
	AdjustWalletAdmin(ctx context.Context, req AdminAdjustRequest) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string, actorID uuid.UUID) (*domain.Transaction, error)
	ListByOwner(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// TransferRequest holds validated input for a wallet-to-wallet transfer.
type TransferRequest struct {
	SenderOwnerID   uuid.UUID
	ReceiverOwnerID uuid.UUID
	Amount          domain.Money
	Description     string
	Pin             string
}

// TopUpRequest holds validated input for a phone top-up purchase.
type TopUpRequest struct {
	OwnerID        uuid.UUID
	Amount         domain.Money
	RecipientPhone string
	Carrier        domain.Carrier
	Pin            string
}

// BillPaymentRequest holds validated input for a bill payment.
type BillPaymentRequest struct {
	OwnerID       uuid.UUID
	Amount        domain.Money
	BillType      domain.BillType
	AccountNumber string
	Provider      string
	Pin           string
}

// CardDepositRequest holds validated input for a card-funded deposit.
// CardToken is an opaque masked token; raw card data never reaches the engine.
type CardDepositRequest struct {
	OwnerID   uuid.UUID
	Amount    domain.Money
	CardToken string
}

// MerchantPaymentRequest holds validated input for an in-store merchant payment.
type MerchantPaymentRequest struct {
	OwnerID      uuid.UUID
	MerchantCode string
	Amount       domain.Money
	Description  string
	Pin          string
}

// AgentWithdrawalRequest holds validated input for a cash-out submission.
type AgentWithdrawalRequest struct {
	OwnerID   uuid.UUID
	AgentCode string
	Amount    domain.Money
	Pin       string
}

// AgentWithdrawalResult is returned by SubmitAgentWithdrawal. The client
// reads the confirmation code to the agent at the point of cash-out; it
// is also recorded on the pending transaction.
type AgentWithdrawalResult struct {
	Transaction      *domain.Transaction
	ConfirmationCode string
}

// AdminAdjustRequest holds validated input for a manual balance adjustment.
type AdminAdjustRequest struct {
	OwnerID   uuid.UUID
	Direction AdjustDirection
	Amount    domain.Money
	Reason    string
}

// AdjustDirection is the sign of an admin adjustment.
type AdjustDirection string

const (
	AdjustCredit AdjustDirection = "credit"
	AdjustDebit  AdjustDirection = "debit"
)

// WalletService defines wallet read/admin logic outside the engine.
type WalletService interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	SetActive(ctx context.Context, ownerID uuid.UUID, active bool) (*domain.Wallet, error)
}

// ReconciliationService replays the ledger against stored balances.
type ReconciliationService interface {
	CheckWallet(ctx context.Context, ownerID uuid.UUID) (*ReconciliationReport, error)
}

// ReconciliationReport is the result of a single-wallet ledger replay.
type ReconciliationReport struct {
	WalletID      uuid.UUID
	OwnerID       uuid.UUID
	StoredCents   int64
	ReplayedCents int64
	Consistent    bool
	CheckedAt     time.Time
}
