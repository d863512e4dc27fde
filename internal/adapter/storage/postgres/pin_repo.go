package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-money-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PinRepo implements ports.PinRepository.
type PinRepo struct {
	pool Pool
}

// NewPinRepo creates a new PinRepo.
func NewPinRepo(pool Pool) *PinRepo {
	return &PinRepo{pool: pool}
}

// Get fetches the PIN credential for an owner. Returns (nil, nil) when
// no PIN has been set.
func (r *PinRepo) Get(ctx context.Context, ownerID uuid.UUID) (*domain.PinCredential, error) {
	query := `SELECT owner_id, pin_hash, attempts, locked_until, updated_at
		FROM pin_credentials WHERE owner_id = $1`

	c := &domain.PinCredential{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&c.OwnerID, &c.Hash, &c.Attempts, &c.LockedUntil, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pin credential: %w", err)
	}
	return c, nil
}

// Save upserts the PIN credential.
func (r *PinRepo) Save(ctx context.Context, c *domain.PinCredential) error {
	query := `INSERT INTO pin_credentials (owner_id, pin_hash, attempts, locked_until, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id) DO UPDATE SET
			pin_hash = EXCLUDED.pin_hash,
			attempts = EXCLUDED.attempts,
			locked_until = EXCLUDED.locked_until,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, c.OwnerID, c.Hash, c.Attempts, c.LockedUntil, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save pin credential: %w", err)
	}
	return nil
}
