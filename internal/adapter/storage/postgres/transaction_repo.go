package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, reference, transaction_type, sender_id, receiver_id,
		amount_cents, fee_cents, total_cents, currency, description, status, created_at, updated_at, processed_at`

// Create inserts a new transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, reference, transaction_type, sender_id, receiver_id,
		amount_cents, fee_cents, total_cents, currency, description, status, created_at, updated_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.Reference, t.Type, t.SenderID, t.ReceiverID,
		t.Amount.Cents, t.Fee.Cents, t.Total.Cents, t.Amount.Currency,
		t.Description, t.Status, t.CreatedAt, t.UpdatedAt, t.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// GetByReference fetches a transaction by its reference number.
func (r *TransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, reference))
}

// GetByReferenceForUpdate fetches a transaction by reference with a row
// lock, serializing confirm/cancel on the same withdrawal.
func (r *TransactionRepo) GetByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1 FOR UPDATE`
	return scanTransaction(tx.QueryRow(ctx, query, reference))
}

// ExistsByReference checks reference uniqueness.
func (r *TransactionRepo) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE reference = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, reference).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check reference exists: %w", err)
	}
	return exists, nil
}

// UpdateStatus updates a transaction's status within a database transaction.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	now := time.Now().UTC()
	query := `UPDATE transactions SET status = $1, updated_at = $2, processed_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, now, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// List fetches transactions involving an owner, with filtering and pagination.
// An owner sees rows where they are sender or receiver.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("(sender_id = $%d OR receiver_id = $%d)", argIdx, argIdx))
	args = append(args, params.OwnerID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT `+transactionColumns+`
		FROM transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.Reference, &t.Type, &t.SenderID, &t.ReceiverID,
			&t.Amount.Cents, &t.Fee.Cents, &t.Total.Cents, &t.Amount.Currency,
			&t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.ProcessedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		t.Fee.Currency = t.Amount.Currency
		t.Total.Currency = t.Amount.Currency
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// CreateTopUpDetail inserts the phone top-up side record.
func (r *TransactionRepo) CreateTopUpDetail(ctx context.Context, tx pgx.Tx, d *domain.PhoneTopUpDetail) error {
	query := `INSERT INTO phone_topup_details (transaction_id, recipient_phone, carrier, minutes_amount, message, carrier_reference)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		d.TransactionID, d.RecipientPhone, d.Carrier, d.MinutesEstimate, d.Message, d.CarrierReference,
	)
	if err != nil {
		return fmt.Errorf("insert topup detail: %w", err)
	}
	return nil
}

// CreateBillPaymentDetail inserts the bill payment side record.
func (r *TransactionRepo) CreateBillPaymentDetail(ctx context.Context, tx pgx.Tx, d *domain.BillPaymentDetail) error {
	query := `INSERT INTO bill_payment_details (transaction_id, bill_type, account_number, service_provider, billing_period, provider_reference)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		d.TransactionID, d.BillType, d.AccountNumber, d.ServiceProvider, d.BillingPeriod, d.ProviderReference,
	)
	if err != nil {
		return fmt.Errorf("insert bill payment detail: %w", err)
	}
	return nil
}

// scanTransaction is a helper to scan a single row into a Transaction.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.Reference, &t.Type, &t.SenderID, &t.ReceiverID,
		&t.Amount.Cents, &t.Fee.Cents, &t.Total.Cents, &t.Amount.Currency,
		&t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	t.Fee.Currency = t.Amount.Currency
	t.Total.Currency = t.Amount.Currency
	return t, nil
}
