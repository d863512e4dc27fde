package postgres

import (
	"context"
	"fmt"

	"mobile-money-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HistoryRepo implements ports.HistoryRepository. The table is
// append-only: there is intentionally no update or delete here.
type HistoryRepo struct {
	pool Pool
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(pool Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

// Create inserts a ledger entry within a database transaction.
func (r *HistoryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.WalletHistory) error {
	query := `INSERT INTO wallet_history (id, wallet_id, transaction_id, operation_type,
		amount_cents, balance_before_cents, balance_after_cents, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.WalletID, e.TransactionID, e.Operation,
		e.Amount.Cents, e.BalanceBefore.Cents, e.BalanceAfter.Cents,
		e.Amount.Currency, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet history: %w", err)
	}
	return nil
}

// ListByWallet fetches history entries for a wallet, newest first.
func (r *HistoryRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.WalletHistory, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_history WHERE wallet_id = $1`, walletID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count wallet history: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, wallet_id, transaction_id, operation_type,
		amount_cents, balance_before_cents, balance_after_cents, currency, created_at
		FROM wallet_history WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list wallet history: %w", err)
	}
	defer rows.Close()

	var entries []domain.WalletHistory
	for rows.Next() {
		var e domain.WalletHistory
		var currency domain.Currency
		err := rows.Scan(
			&e.ID, &e.WalletID, &e.TransactionID, &e.Operation,
			&e.Amount.Cents, &e.BalanceBefore.Cents, &e.BalanceAfter.Cents,
			&currency, &e.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan history row: %w", err)
		}
		e.Amount.Currency = currency
		e.BalanceBefore.Currency = currency
		e.BalanceAfter.Currency = currency
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, total, nil
}

// SumByWallet returns sum(credits) - sum(debits) over the full ledger.
// Used by reconciliation to replay the stored balance.
func (r *HistoryRepo) SumByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN operation_type = 'credit' THEN amount_cents ELSE -amount_cents END), 0)
		FROM wallet_history WHERE wallet_id = $1`

	var sum int64
	err := r.pool.QueryRow(ctx, query, walletID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum wallet history: %w", err)
	}
	return sum, nil
}
