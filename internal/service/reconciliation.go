package service

import (
	"context"
	"fmt"
	"time"

	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReconciliationServiceImpl replays a wallet's history against its
// stored balance. A freshly created wallet with no history replays to
// zero, so a wallet is consistent only when every cent it holds is
// explained by its credit and debit rows.
type ReconciliationServiceImpl struct {
	walletRepo  ports.WalletRepository
	historyRepo ports.HistoryRepository
	log         zerolog.Logger
	now         func() time.Time
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(walletRepo ports.WalletRepository, historyRepo ports.HistoryRepository, log zerolog.Logger) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		walletRepo:  walletRepo,
		historyRepo: historyRepo,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CheckWallet compares the stored balance with the history replay sum.
func (s *ReconciliationServiceImpl) CheckWallet(ctx context.Context, ownerID uuid.UUID) (*ports.ReconciliationReport, error) {
	wallet, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	replayed, err := s.historyRepo.SumByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("replay history: %w", err))
	}

	report := &ports.ReconciliationReport{
		WalletID:      wallet.ID,
		OwnerID:       ownerID,
		StoredCents:   wallet.Balance.Cents,
		ReplayedCents: replayed,
		Consistent:    wallet.Balance.Cents == replayed,
		CheckedAt:     s.now(),
	}
	if !report.Consistent {
		s.log.Error().
			Str("wallet_id", wallet.ID.String()).
			Int64("stored_cents", report.StoredCents).
			Int64("replayed_cents", report.ReplayedCents).
			Msg("wallet balance does not match history replay")
	}
	return report, nil
}
