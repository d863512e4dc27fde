package service

import (
	"mobile-money-ledger/config"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/pkg/apperror"
)

// ScheduleFeePolicy implements ports.FeePolicy from the configured fee
// schedule. Fees are computed once at submission and stored with the
// transaction; they are never recomputed from a later schedule.
type ScheduleFeePolicy struct {
	cfg config.FeeConfig
}

// NewScheduleFeePolicy creates a fee policy from config.
func NewScheduleFeePolicy(cfg config.FeeConfig) *ScheduleFeePolicy {
	return &ScheduleFeePolicy{cfg: cfg}
}

// FeeFor returns the fee for one transaction of the given kind.
func (p *ScheduleFeePolicy) FeeFor(kind domain.TransactionType, amount domain.Money) (domain.Money, error) {
	switch kind {
	case domain.TransactionTypeSend:
		return amount.Percent(p.cfg.TransferBasisPoints), nil
	case domain.TransactionTypeBillPayment:
		return amount.Percent(p.cfg.BillPaymentBasisPoints), nil
	case domain.TransactionTypeTopUp:
		return domain.NewMoney(p.cfg.TopUpFlatCents, amount.Currency), nil
	case domain.TransactionTypeCardDeposit:
		fee := amount.Percent(p.cfg.CardDepositBasisPoints)
		return domain.NewMoney(fee.Cents+p.cfg.CardDepositFlatCents, amount.Currency), nil
	case domain.TransactionTypeAgentWithdrawal:
		return domain.NewMoney(p.cfg.AgentWithdrawalCents, amount.Currency), nil
	case domain.TransactionTypeMerchantPayment,
		domain.TransactionTypeDeposit,
		domain.TransactionTypeWithdrawal,
		domain.TransactionTypeReceive,
		domain.TransactionTypeRecharge,
		domain.TransactionTypeWithdrawalFee:
		return domain.Zero(amount.Currency), nil
	default:
		return domain.Money{}, apperror.ErrUnsupportedTransactionKind(string(kind))
	}
}
