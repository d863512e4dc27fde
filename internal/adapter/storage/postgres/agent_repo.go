package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-money-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AgentRepo implements ports.AgentRepository.
type AgentRepo struct {
	pool Pool
}

// NewAgentRepo creates a new AgentRepo.
func NewAgentRepo(pool Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

const agentProfileColumns = `owner_id, agent_code, commission_rate_basis_points, is_approved, location, created_at`

// GetProfileByCode fetches an agent profile by its public code.
func (r *AgentRepo) GetProfileByCode(ctx context.Context, agentCode string) (*domain.AgentProfile, error) {
	query := `SELECT ` + agentProfileColumns + ` FROM agent_profiles WHERE agent_code = $1`
	return scanAgentProfile(r.pool.QueryRow(ctx, query, agentCode), "get agent by code")
}

// GetProfileByOwner fetches an agent profile by owner ID.
func (r *AgentRepo) GetProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.AgentProfile, error) {
	query := `SELECT ` + agentProfileColumns + ` FROM agent_profiles WHERE owner_id = $1`
	return scanAgentProfile(r.pool.QueryRow(ctx, query, ownerID), "get agent by owner")
}

// CreateCommission inserts a commission record within a database transaction.
func (r *AgentRepo) CreateCommission(ctx context.Context, tx pgx.Tx, c *domain.AgentCommission) error {
	query := `INSERT INTO agent_commissions (id, agent_id, transaction_id, amount_cents, currency,
		rate_basis_points, period_start, period_end, is_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		c.ID, c.AgentID, c.TransactionID, c.Amount.Cents, c.Amount.Currency,
		c.RateBasisPoints, c.PeriodStart, c.PeriodEnd, c.IsPaid, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agent commission: %w", err)
	}
	return nil
}

// GetLimitsForUpdate fetches all limit rows for an agent with pessimistic
// locking. This MUST be called within a transaction.
func (r *AgentRepo) GetLimitsForUpdate(ctx context.Context, tx pgx.Tx, agentID uuid.UUID) ([]domain.AgentLimit, error) {
	query := `SELECT agent_id, limit_type, limit_cents, usage_cents, reset_period, last_reset
		FROM agent_limits WHERE agent_id = $1 ORDER BY limit_type FOR UPDATE`

	rows, err := tx.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("get agent limits: %w", err)
	}
	defer rows.Close()

	var limits []domain.AgentLimit
	for rows.Next() {
		var l domain.AgentLimit
		err := rows.Scan(&l.AgentID, &l.Type, &l.LimitCents, &l.UsageCents, &l.ResetPeriod, &l.LastReset)
		if err != nil {
			return nil, fmt.Errorf("scan agent limit: %w", err)
		}
		limits = append(limits, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agent limits: %w", err)
	}
	return limits, nil
}

// UpdateLimitUsage persists reset and consumption of a limit row within
// a database transaction.
func (r *AgentRepo) UpdateLimitUsage(ctx context.Context, tx pgx.Tx, l *domain.AgentLimit) error {
	query := `UPDATE agent_limits SET usage_cents = $1, last_reset = $2 WHERE agent_id = $3 AND limit_type = $4`

	tag, err := tx.Exec(ctx, query, l.UsageCents, l.LastReset, l.AgentID, l.Type)
	if err != nil {
		return fmt.Errorf("update agent limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent limit not found: %s/%s", l.AgentID, l.Type)
	}
	return nil
}

func scanAgentProfile(row pgx.Row, op string) (*domain.AgentProfile, error) {
	p := &domain.AgentProfile{}
	err := row.Scan(
		&p.OwnerID, &p.AgentCode, &p.CommissionRateBasis, &p.IsApproved, &p.Location, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
