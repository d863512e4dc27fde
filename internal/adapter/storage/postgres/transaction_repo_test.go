package postgres

import (
	"context"
	"testing"
	"time"

	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(sender, receiver uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeSend,
		SenderID:    &sender,
		ReceiverID:  &receiver,
		Amount:      domain.NewMoney(10000, domain.CurrencyHTG),
		Fee:         domain.NewMoney(100, domain.CurrencyHTG),
		Total:       domain.NewMoney(10100, domain.CurrencyHTG),
		Reference:   "TXN1A2B3C4D",
		Description: "lunch money",
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProcessedAt: &now,
	}
}

func transactionTestColumns() []string {
	return []string{"id", "reference", "transaction_type", "sender_id", "receiver_id",
		"amount_cents", "fee_cents", "total_cents", "currency", "description", "status",
		"created_at", "updated_at", "processed_at"}
}

func transactionRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(transactionTestColumns()).AddRow(
		t.ID, t.Reference, t.Type, t.SenderID, t.ReceiverID,
		t.Amount.Cents, t.Fee.Cents, t.Total.Cents, t.Amount.Currency,
		t.Description, t.Status, t.CreatedAt, t.UpdatedAt, t.ProcessedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.Reference, txn.Type, txn.SenderID, txn.ReceiverID,
			txn.Amount.Cents, txn.Fee.Cents, txn.Total.Cents, txn.Amount.Currency,
			txn.Description, txn.Status, txn.CreatedAt, txn.UpdatedAt, txn.ProcessedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE reference").
		WithArgs(txn.Reference).
		WillReturnRows(transactionRow(txn))

	result, err := repo.GetByReference(context.Background(), txn.Reference)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.Equal(t, domain.CurrencyHTG, result.Fee.Currency)
	assert.Equal(t, int64(10100), result.Total.Cents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByReference_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE reference").
		WithArgs("TXNMISSING1").
		WillReturnRows(pgxmock.NewRows(transactionTestColumns()))

	result, err := repo.GetByReference(context.Background(), "TXNMISSING1")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByReferenceForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())
	txn.Status = domain.TransactionStatusPending

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE reference = .+ FOR UPDATE").
		WithArgs(txn.Reference).
		WillReturnRows(transactionRow(txn))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByReferenceForUpdate(context.Background(), tx, txn.Reference)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.Equal(t, domain.TransactionStatusPending, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ExistsByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("TXN1A2B3C4D").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByReference(context.Background(), "TXN1A2B3C4D")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txnID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusCompleted, pgxmock.AnyArg(), txnID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, txnID, domain.TransactionStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	ownerID := uuid.New()
	txn := newTestTransaction(ownerID, uuid.New())

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(ownerID, 20, 0).
		WillReturnRows(transactionRow(txn))

	txns, total, err := repo.List(context.Background(), ports.TransactionListParams{
		OwnerID:  ownerID,
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.Reference, txns[0].Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_List_StatusFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	ownerID := uuid.New()
	status := domain.TransactionStatusPending

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(ownerID, status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(ownerID, status, 20, 0).
		WillReturnRows(pgxmock.NewRows(transactionTestColumns()))

	txns, total, err := repo.List(context.Background(), ports.TransactionListParams{
		OwnerID:  ownerID,
		Status:   &status,
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CreateTopUpDetail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	detail := &domain.PhoneTopUpDetail{
		TransactionID:    uuid.New(),
		RecipientPhone:   "+50937001234",
		Carrier:          domain.CarrierDigicel,
		MinutesEstimate:  50,
		CarrierReference: "DG-123456",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO phone_topup_details").
		WithArgs(detail.TransactionID, detail.RecipientPhone, detail.Carrier,
			detail.MinutesEstimate, detail.Message, detail.CarrierReference).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateTopUpDetail(context.Background(), tx, detail)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CreateBillPaymentDetail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	detail := &domain.BillPaymentDetail{
		TransactionID:     uuid.New(),
		BillType:          domain.BillTypeElectricity,
		AccountNumber:     "EDH-009911",
		ServiceProvider:   "EDH",
		ProviderReference: "PR-778899",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bill_payment_details").
		WithArgs(detail.TransactionID, detail.BillType, detail.AccountNumber,
			detail.ServiceProvider, detail.BillingPeriod, detail.ProviderReference).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateBillPaymentDetail(context.Background(), tx, detail)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
