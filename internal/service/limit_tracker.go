package service

import (
	"context"
	"fmt"
	"time"

	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AgentLimitTracker implements ports.LimitTracker. It runs inside the
// caller's database transaction so limit consumption commits or rolls
// back together with the money movement.
type AgentLimitTracker struct {
	agentRepo ports.AgentRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewAgentLimitTracker creates a new AgentLimitTracker.
func NewAgentLimitTracker(agentRepo ports.AgentRepository, log zerolog.Logger) *AgentLimitTracker {
	return &AgentLimitTracker{
		agentRepo: agentRepo,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// TryConsume validates amountCents against the agent's limits and
// increments rolling usage. Limit rows are locked FOR UPDATE by the
// repository; expired windows reset lazily before the check.
func (t *AgentLimitTracker) TryConsume(ctx context.Context, tx pgx.Tx, agentID uuid.UUID, amountCents int64) error {
	limits, err := t.agentRepo.GetLimitsForUpdate(ctx, tx, agentID)
	if err != nil {
		return lockError("load agent limits", err)
	}

	now := t.now()
	for i := range limits {
		l := &limits[i]

		if l.NeedsReset(now) {
			l.UsageCents = 0
			l.LastReset = now
		}

		switch l.Type {
		case domain.LimitSingle:
			if amountCents > l.LimitCents {
				return apperror.ErrLimitExceeded(string(l.Type))
			}
			// single limits carry no usage
			continue
		case domain.LimitDaily, domain.LimitMonthly:
			if l.UsageCents+amountCents > l.LimitCents {
				return apperror.ErrLimitExceeded(string(l.Type))
			}
			l.UsageCents += amountCents
		default:
			// cash_balance is informational here, not consumed per-transaction
			continue
		}

		if err := t.agentRepo.UpdateLimitUsage(ctx, tx, l); err != nil {
			return apperror.InternalError(fmt.Errorf("update agent limit: %w", err))
		}
	}
	return nil
}
