package ports

import (
	"context"

	"mobile-money-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balanceCents int64) error
	SetActive(ctx context.Context, walletID uuid.UUID, active bool) error
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	// GetByReferenceForUpdate locks the transaction row for the duration
	// of the unit of work so two-phase settlements serialize on it.
	GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Transaction, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	CreateTopUpDetail(ctx context.Context, tx pgx.Tx, detail *domain.PhoneTopUpDetail) error
	CreateBillPaymentDetail(ctx context.Context, tx pgx.Tx, detail *domain.BillPaymentDetail) error
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	OwnerID  uuid.UUID
	Status   *domain.TransactionStatus
	Type     *domain.TransactionType
	From     *int64 // Unix timestamp
	To       *int64 // Unix timestamp
	Page     int
	PageSize int
}

// HistoryRepository defines persistence for the append-only wallet ledger.
type HistoryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletHistory) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.WalletHistory, int64, error)
	// SumByWallet returns sum(credits) - sum(debits) for reconciliation.
	SumByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)
}

// PinRepository defines persistence for PIN credentials.
type PinRepository interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.PinCredential, error)
	Save(ctx context.Context, cred *domain.PinCredential) error
}

// AgentRepository defines persistence for agent profiles, commissions and limits.
type AgentRepository interface {
	GetProfileByCode(ctx context.Context, agentCode string) (*domain.AgentProfile, error)
	GetProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.AgentProfile, error)
	CreateCommission(ctx context.Context, tx pgx.Tx, commission *domain.AgentCommission) error
	GetLimitsForUpdate(ctx context.Context, tx pgx.Tx, agentID uuid.UUID) ([]domain.AgentLimit, error)
	UpdateLimitUsage(ctx context.Context, tx pgx.Tx, limit *domain.AgentLimit) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
