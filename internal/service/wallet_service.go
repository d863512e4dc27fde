package service

import (
	"context"
	"fmt"

	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(walletRepo ports.WalletRepository, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{walletRepo: walletRepo, log: log}
}

// GetByOwner returns the owner's wallet.
func (s *WalletServiceImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// SetActive freezes or unfreezes the owner's wallet.
func (s *WalletServiceImpl) SetActive(ctx context.Context, ownerID uuid.UUID, active bool) (*domain.Wallet, error) {
	wallet, err := s.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if wallet.IsActive == active {
		return wallet, nil
	}
	if err := s.walletRepo.SetActive(ctx, wallet.ID, active); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set wallet active: %w", err))
	}
	wallet.IsActive = active
	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Bool("active", active).
		Msg("wallet activation changed")
	return wallet, nil
}
