package service

import (
	"errors"
	"fmt"

	"mobile-money-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATEs raised when a unit of work loses a lock race.
// These surface as SYS_002 so callers know the operation is safe to
// retry, unlike a genuine storage failure.
const (
	sqlstateLockNotAvailable     = "55P03" // lock_timeout expired
	sqlstateDeadlockDetected     = "40P01"
	sqlstateSerializationFailure = "40001"
)

// lockError classifies an error from a lock-acquiring query. Lock
// contention maps to ConcurrencyConflict; everything else stays an
// internal error.
func lockError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateLockNotAvailable, sqlstateDeadlockDetected, sqlstateSerializationFailure:
			return apperror.ErrConcurrencyConflict(fmt.Errorf("%s: %w", op, err))
		}
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
