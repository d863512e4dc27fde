package service

import (
	"context"
	"fmt"
	"time"

	"mobile-money-ledger/config"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PinServiceImpl implements ports.PinService.
//
// The lockout check runs BEFORE any hash comparison: a locked
// credential rejects even the correct PIN, and a correct attempt while
// locked does not touch the attempt counter.
type PinServiceImpl struct {
	pinRepo ports.PinRepository
	hashSvc ports.HashService
	cfg     config.PinConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewPinService creates a new PinServiceImpl.
func NewPinService(pinRepo ports.PinRepository, hashSvc ports.HashService, cfg config.PinConfig, log zerolog.Logger) *PinServiceImpl {
	return &PinServiceImpl{
		pinRepo: pinRepo,
		hashSvc: hashSvc,
		cfg:     cfg,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetPin hashes and stores a new PIN for the owner. Setting a PIN
// clears any previous attempts and lockout.
func (s *PinServiceImpl) SetPin(ctx context.Context, ownerID uuid.UUID, pin string) error {
	if !domain.ValidPinFormat(pin) {
		return apperror.ErrInvalidPinFormat()
	}

	hash, err := s.hashSvc.Hash(pin)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}

	cred := &domain.PinCredential{
		OwnerID:   ownerID,
		Hash:      hash,
		Attempts:  0,
		UpdatedAt: s.now(),
	}
	if err := s.pinRepo.Save(ctx, cred); err != nil {
		return apperror.InternalError(fmt.Errorf("save pin: %w", err))
	}

	s.log.Info().Str("owner_id", ownerID.String()).Msg("PIN set")
	return nil
}

// CheckPin verifies the PIN against the stored credential, tracking
// failed attempts and enforcing the lockout window.
func (s *PinServiceImpl) CheckPin(ctx context.Context, ownerID uuid.UUID, pin string) error {
	cred, err := s.pinRepo.Get(ctx, ownerID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get pin credential: %w", err))
	}
	if cred == nil {
		return apperror.ErrPinNotSet()
	}

	now := s.now()
	if cred.IsLocked(now) {
		return apperror.ErrPinLocked()
	}

	ok, err := s.hashSvc.Verify(pin, cred.Hash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("verify pin: %w", err))
	}

	if !ok {
		cred.Attempts++
		if cred.Attempts >= s.cfg.MaxAttempts {
			lockedUntil := now.Add(s.cfg.Lockout)
			cred.LockedUntil = &lockedUntil
			s.log.Warn().
				Str("owner_id", ownerID.String()).
				Time("locked_until", lockedUntil).
				Msg("PIN locked after repeated failures")
		}
		cred.UpdatedAt = now
		if err := s.pinRepo.Save(ctx, cred); err != nil {
			return apperror.InternalError(fmt.Errorf("save pin attempts: %w", err))
		}
		// The attempt that trips the lock still reports a wrong PIN;
		// only subsequent checks see the lockout.
		return apperror.ErrWrongPin(s.cfg.MaxAttempts - cred.Attempts)
	}

	// Success resets the counter and any expired lock.
	if cred.Attempts != 0 || cred.LockedUntil != nil {
		cred.Attempts = 0
		cred.LockedUntil = nil
		cred.UpdatedAt = now
		if err := s.pinRepo.Save(ctx, cred); err != nil {
			return apperror.InternalError(fmt.Errorf("reset pin attempts: %w", err))
		}
	}
	return nil
}

// Status returns the externally visible PIN state.
func (s *PinServiceImpl) Status(ctx context.Context, ownerID uuid.UUID) (*ports.PinStatus, error) {
	cred, err := s.pinRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get pin credential: %w", err))
	}
	if cred == nil {
		return &ports.PinStatus{IsSet: false}, nil
	}

	status := &ports.PinStatus{
		IsSet:    true,
		Attempts: cred.Attempts,
	}
	if cred.IsLocked(s.now()) {
		status.LockedUntil = cred.LockedUntil
	}
	return status, nil
}
