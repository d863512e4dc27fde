package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgentProfile describes a cash-in/cash-out agent. AgentCode is the
// public identifier customers use ("A" followed by six characters).
type AgentProfile struct {
	OwnerID             uuid.UUID `json:"owner_id"`
	AgentCode           string    `json:"agent_code"`
	CommissionRateBasis int64     `json:"commission_rate_basis_points"`
	IsApproved          bool      `json:"is_approved"`
	Location            string    `json:"location,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// AgentCommission records commission owed for one agent-mediated
// transaction. The rate is snapshotted at transaction time and never
// recomputed.
type AgentCommission struct {
	ID              uuid.UUID `json:"id"`
	AgentID         uuid.UUID `json:"agent_id"`
	TransactionID   uuid.UUID `json:"transaction_id"`
	Amount          Money     `json:"commission_amount"`
	RateBasisPoints int64     `json:"commission_rate_basis_points"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	IsPaid          bool      `json:"is_paid"`
	CreatedAt       time.Time `json:"created_at"`
}

// LimitType identifies which ceiling an AgentLimit row enforces.
type LimitType string

const (
	LimitDaily       LimitType = "daily"
	LimitMonthly     LimitType = "monthly"
	LimitSingle      LimitType = "single"
	LimitCashBalance LimitType = "cash_balance"
)

// ResetPeriod controls when usage rolls back to zero.
type ResetPeriod string

const (
	ResetDaily   ResetPeriod = "daily"
	ResetMonthly ResetPeriod = "monthly"
	ResetNever   ResetPeriod = "never"
)

// AgentLimit tracks rolling usage against a ceiling. current_usage <=
// limit_amount must hold after any accepted transaction; usage resets
// lazily at each period boundary.
type AgentLimit struct {
	AgentID     uuid.UUID   `json:"agent_id"`
	Type        LimitType   `json:"limit_type"`
	LimitCents  int64       `json:"limit_amount"`
	UsageCents  int64       `json:"current_usage"`
	ResetPeriod ResetPeriod `json:"reset_period"`
	LastReset   time.Time   `json:"last_reset"`
}

// NeedsReset reports whether a period boundary has passed since the
// last reset. Boundaries are UTC day and month starts.
func (l *AgentLimit) NeedsReset(now time.Time) bool {
	switch l.ResetPeriod {
	case ResetDaily:
		return l.LastReset.Before(startOfDay(now))
	case ResetMonthly:
		return l.LastReset.Before(startOfMonth(now))
	default:
		return false
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
