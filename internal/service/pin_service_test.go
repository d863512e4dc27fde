package service

import (
	"context"
	"testing"
	"time"

	"mobile-money-ledger/config"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports/mocks"
	"mobile-money-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pinTestNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type pinTestDeps struct {
	svc     *PinServiceImpl
	pinRepo *mocks.MockPinRepository
	hashSvc *mocks.MockHashService
	ctrl    *gomock.Controller
}

func setupPinService(t *testing.T) *pinTestDeps {
	ctrl := gomock.NewController(t)
	d := &pinTestDeps{
		pinRepo: mocks.NewMockPinRepository(ctrl),
		hashSvc: mocks.NewMockHashService(ctrl),
		ctrl:    ctrl,
	}
	cfg := config.PinConfig{MaxAttempts: 5, Lockout: 30 * time.Minute}
	d.svc = NewPinService(d.pinRepo, d.hashSvc, cfg, zerolog.Nop())
	d.svc.now = func() time.Time { return pinTestNow }
	return d
}

func TestPinService_SetPin(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()

	d.hashSvc.EXPECT().Hash("1234").Return("$argon2id$hash", nil)
	d.pinRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cred *domain.PinCredential) error {
			assert.Equal(t, owner, cred.OwnerID)
			assert.Equal(t, "$argon2id$hash", cred.Hash)
			assert.Equal(t, 0, cred.Attempts)
			assert.Nil(t, cred.LockedUntil)
			return nil
		})

	require.NoError(t, d.svc.SetPin(ctx, owner, "1234"))
}

func TestPinService_SetPin_BadFormat(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	for _, pin := range []string{"", "12", "1234567", "12a4", "12 34"} {
		err := d.svc.SetPin(context.Background(), uuid.New(), pin)
		require.Error(t, err, pin)
		assert.Equal(t, "PIN_004", err.(*apperror.AppError).Code, pin)
	}
}

func TestPinService_CheckPin_Success(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	cred := &domain.PinCredential{OwnerID: owner, Hash: "$h", Attempts: 0}

	d.pinRepo.EXPECT().Get(ctx, owner).Return(cred, nil)
	d.hashSvc.EXPECT().Verify("1234", "$h").Return(true, nil)
	// clean credential: nothing to reset, no save

	require.NoError(t, d.svc.CheckPin(ctx, owner, "1234"))
}

func TestPinService_CheckPin_NotSet(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	d.pinRepo.EXPECT().Get(ctx, owner).Return(nil, nil)

	err := d.svc.CheckPin(ctx, owner, "1234")
	assert.Equal(t, "PIN_003", err.(*apperror.AppError).Code)
}

func TestPinService_CheckPin_WrongPinCountsDown(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	cred := &domain.PinCredential{OwnerID: owner, Hash: "$h", Attempts: 2}

	d.pinRepo.EXPECT().Get(ctx, owner).Return(cred, nil)
	d.hashSvc.EXPECT().Verify("0000", "$h").Return(false, nil)
	d.pinRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *domain.PinCredential) error {
			assert.Equal(t, 3, saved.Attempts)
			assert.Nil(t, saved.LockedUntil)
			return nil
		})

	err := d.svc.CheckPin(ctx, owner, "0000")
	require.Error(t, err)
	appErr := err.(*apperror.AppError)
	assert.Equal(t, "PIN_001", appErr.Code)
	assert.Contains(t, appErr.Message, "2 attempts remaining")
}

func TestPinService_CheckPin_FifthFailureLocks(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	cred := &domain.PinCredential{OwnerID: owner, Hash: "$h", Attempts: 4}

	d.pinRepo.EXPECT().Get(ctx, owner).Return(cred, nil)
	d.hashSvc.EXPECT().Verify("0000", "$h").Return(false, nil)
	d.pinRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *domain.PinCredential) error {
			assert.Equal(t, 5, saved.Attempts)
			require.NotNil(t, saved.LockedUntil)
			assert.Equal(t, pinTestNow.Add(30*time.Minute), *saved.LockedUntil)
			return nil
		})

	// The locking attempt itself still reads as a wrong PIN; the
	// lockout only answers from the next check onward.
	err := d.svc.CheckPin(ctx, owner, "0000")
	appErr := err.(*apperror.AppError)
	assert.Equal(t, "PIN_001", appErr.Code)
	assert.Contains(t, appErr.Message, "0 attempts remaining")
}

func TestPinService_CheckPin_CorrectPinWhileLockedStillRejected(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	lockedUntil := pinTestNow.Add(10 * time.Minute)
	cred := &domain.PinCredential{OwnerID: owner, Hash: "$h", Attempts: 5, LockedUntil: &lockedUntil}

	d.pinRepo.EXPECT().Get(ctx, owner).Return(cred, nil)
	// no Verify: the lock check runs before any hash comparison

	err := d.svc.CheckPin(ctx, owner, "1234")
	assert.Equal(t, "PIN_002", err.(*apperror.AppError).Code)
	assert.Equal(t, 5, cred.Attempts)
}

func TestPinService_CheckPin_SuccessAfterLockExpiryResets(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()
	expired := pinTestNow.Add(-1 * time.Minute)
	cred := &domain.PinCredential{OwnerID: owner, Hash: "$h", Attempts: 5, LockedUntil: &expired}

	d.pinRepo.EXPECT().Get(ctx, owner).Return(cred, nil)
	d.hashSvc.EXPECT().Verify("1234", "$h").Return(true, nil)
	d.pinRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *domain.PinCredential) error {
			assert.Equal(t, 0, saved.Attempts)
			assert.Nil(t, saved.LockedUntil)
			return nil
		})

	require.NoError(t, d.svc.CheckPin(ctx, owner, "1234"))
}

func TestPinService_Status(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := uuid.New()

	t.Run("not set", func(t *testing.T) {
		d.pinRepo.EXPECT().Get(ctx, owner).Return(nil, nil)
		status, err := d.svc.Status(ctx, owner)
		require.NoError(t, err)
		assert.False(t, status.IsSet)
	})

	t.Run("locked", func(t *testing.T) {
		lockedUntil := pinTestNow.Add(10 * time.Minute)
		d.pinRepo.EXPECT().Get(ctx, owner).Return(&domain.PinCredential{
			OwnerID: owner, Hash: "$h", Attempts: 5, LockedUntil: &lockedUntil,
		}, nil)
		status, err := d.svc.Status(ctx, owner)
		require.NoError(t, err)
		assert.True(t, status.IsSet)
		assert.Equal(t, 5, status.Attempts)
		require.NotNil(t, status.LockedUntil)
		assert.Equal(t, lockedUntil, *status.LockedUntil)
	})

	t.Run("lock expired", func(t *testing.T) {
		expired := pinTestNow.Add(-1 * time.Minute)
		d.pinRepo.EXPECT().Get(ctx, owner).Return(&domain.PinCredential{
			OwnerID: owner, Hash: "$h", Attempts: 5, LockedUntil: &expired,
		}, nil)
		status, err := d.svc.Status(ctx, owner)
		require.NoError(t, err)
		assert.Nil(t, status.LockedUntil)
	})
}
