package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"mobile-money-ledger/config"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const transactionCacheTTL = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService. Every balance
// mutation happens inside one database transaction with the involved
// wallet rows locked FOR UPDATE in ascending wallet-id byte order.
type LedgerServiceImpl struct {
	walletRepo  ports.WalletRepository
	txRepo      ports.TransactionRepository
	historyRepo ports.HistoryRepository
	agentRepo   ports.AgentRepository
	pinSvc      ports.PinService
	feePolicy   ports.FeePolicy
	refGen      ports.ReferenceGenerator
	limits      ports.LimitTracker
	txCache     ports.TransactionCache
	transactor  ports.DBTransactor
	cfg         config.LedgerConfig
	feeOwner    uuid.UUID
	log         zerolog.Logger
	now         func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	historyRepo ports.HistoryRepository,
	agentRepo ports.AgentRepository,
	pinSvc ports.PinService,
	feePolicy ports.FeePolicy,
	refGen ports.ReferenceGenerator,
	limits ports.LimitTracker,
	txCache ports.TransactionCache,
	transactor ports.DBTransactor,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *LedgerServiceImpl {
	s := &LedgerServiceImpl{
		walletRepo:  walletRepo,
		txRepo:      txRepo,
		historyRepo: historyRepo,
		agentRepo:   agentRepo,
		pinSvc:      pinSvc,
		feePolicy:   feePolicy,
		refGen:      refGen,
		limits:      limits,
		txCache:     txCache,
		transactor:  transactor,
		cfg:         cfg,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
	if cfg.FeeWalletOwner != "" {
		owner, err := uuid.Parse(cfg.FeeWalletOwner)
		if err != nil {
			log.Error().Err(err).Msg("invalid fee wallet owner, fee crediting disabled")
		} else {
			s.feeOwner = owner
		}
	} else {
		log.Warn().Msg("no fee wallet configured, fees will not be credited")
	}
	return s
}

// SubmitTransfer moves money between two customer wallets.
func (s *LedgerServiceImpl) SubmitTransfer(ctx context.Context, req ports.TransferRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.SenderOwnerID == req.ReceiverOwnerID {
		return nil, apperror.ErrSelfTransfer()
	}
	if err := s.pinSvc.CheckPin(ctx, req.SenderOwnerID, req.Pin); err != nil {
		return nil, err
	}

	fee, err := s.feePolicy.FeeFor(domain.TransactionTypeSend, req.Amount)
	if err != nil {
		return nil, err
	}
	total, err := req.Amount.Add(fee)
	if err != nil {
		return nil, apperror.ErrCurrencyMismatch()
	}

	ref, err := s.refGen.Generate(ctx, domain.TransactionTypeSend)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	owners := []uuid.UUID{req.SenderOwnerID, req.ReceiverOwnerID}
	if s.collectsFee(fee) {
		owners = append(owners, s.feeOwner)
	}
	wallets, err := s.lockWallets(ctx, dbTx, owners)
	if err != nil {
		return nil, err
	}
	sender, receiver := wallets[req.SenderOwnerID], wallets[req.ReceiverOwnerID]

	if !sender.IsActive || !receiver.IsActive {
		return nil, apperror.ErrInactiveWallet()
	}
	if sender.Balance.Currency != req.Amount.Currency {
		return nil, apperror.ErrCurrencyMismatch()
	}
	if !sender.CanDebit(total) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := s.now()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeSend,
		SenderID:    &req.SenderOwnerID,
		ReceiverID:  &req.ReceiverOwnerID,
		Amount:      req.Amount,
		Fee:         fee,
		Total:       total,
		Reference:   ref,
		Description: req.Description,
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := s.debitWallet(ctx, dbTx, sender, total, txn.ID); err != nil {
		return nil, err
	}
	if err := s.creditWallet(ctx, dbTx, receiver, req.Amount, txn.ID); err != nil {
		return nil, err
	}
	if err := s.creditFee(ctx, dbTx, wallets, fee, txn.ID); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheTransaction(ctx, txn)
	s.log.Info().
		Str("reference", ref).
		Str("sender", req.SenderOwnerID.String()).
		Str("receiver", req.ReceiverOwnerID.String()).
		Int64("amount_cents", req.Amount.Cents).
		Int64("fee_cents", fee.Cents).
		Msg("transfer completed")
	return txn, nil
}

// SubmitTopUp buys phone airtime, debiting the owner's wallet.
func (s *LedgerServiceImpl) SubmitTopUp(ctx context.Context, req ports.TopUpRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidCarrier(req.Carrier) {
		return nil, apperror.Validation("unknown carrier")
	}
	if err := s.pinSvc.CheckPin(ctx, req.OwnerID, req.Pin); err != nil {
		return nil, err
	}

	fee, err := s.feePolicy.FeeFor(domain.TransactionTypeTopUp, req.Amount)
	if err != nil {
		return nil, err
	}
	total, err := req.Amount.Add(fee)
	if err != nil {
		return nil, apperror.ErrCurrencyMismatch()
	}

	ref, err := s.refGen.Generate(ctx, domain.TransactionTypeTopUp)
	if err != nil {
		return nil, err
	}

	txn, err := s.debitOnlyFlow(ctx, debitOnlyParams{
		ownerID:     req.OwnerID,
		kind:        domain.TransactionTypeTopUp,
		amount:      req.Amount,
		fee:         fee,
		total:       total,
		reference:   ref,
		description: fmt.Sprintf("Airtime %s %s", req.Carrier, req.RecipientPhone),
		extra: func(dbCtx context.Context, dbTx pgx.Tx, txn *domain.Transaction) error {
			detail := &domain.PhoneTopUpDetail{
				TransactionID:  txn.ID,
				RecipientPhone: req.RecipientPhone,
				Carrier:        req.Carrier,
				// rough airtime estimate: 1 minute per 2 gourdes
				MinutesEstimate:  int(req.Amount.Cents / 100 / 2),
				CarrierReference: carrierReference(req.Carrier),
			}
			return s.txRepo.CreateTopUpDetail(dbCtx, dbTx, detail)
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("reference", ref).Str("carrier", string(req.Carrier)).Msg("phone top-up completed")
	return txn, nil
}

// SubmitBillPayment pays a utility bill from the owner's wallet.
func (s *LedgerServiceImpl) SubmitBillPayment(ctx context.Context, req ports.BillPaymentRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidBillType(req.BillType) {
		return nil, apperror.Validation("unknown bill type")
	}
	if req.AccountNumber == "" {
		return nil, apperror.Validation("account number is required")
	}
	if err := s.pinSvc.CheckPin(ctx, req.OwnerID, req.Pin); err != nil {
		return nil, err
	}

	fee, err := s.feePolicy.FeeFor(domain.TransactionTypeBillPayment, req.Amount)
	if err != nil {
		return nil, err
	}
	total, err := req.Amount.Add(fee)
	if err != nil {
		return nil, apperror.ErrCurrencyMismatch()
	}

	ref, err := s.refGen.Generate(ctx, domain.TransactionTypeBillPayment)
	if err != nil {
		return nil, err
	}

	txn, err := s.debitOnlyFlow(ctx, debitOnlyParams{
		ownerID:     req.OwnerID,
		kind:        domain.TransactionTypeBillPayment,
		amount:      req.Amount,
		fee:         fee,
		total:       total,
		reference:   ref,
		description: fmt.Sprintf("%s bill %s", req.BillType, req.AccountNumber),
		extra: func(dbCtx context.Context, dbTx pgx.Tx, txn *domain.Transaction) error {
			detail := &domain.BillPaymentDetail{
				TransactionID:     txn.ID,
				BillType:          req.BillType,
				AccountNumber:     req.AccountNumber,
				ServiceProvider:   req.Provider,
				ProviderReference: providerReference(),
			}
			return s.txRepo.CreateBillPaymentDetail(dbCtx, dbTx, detail)
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("reference", ref).Str("bill_type", string(req.BillType)).Msg("bill payment completed")
	return txn, nil
}

// SubmitCardDeposit credits a wallet from an external card. The fee is
// deducted from the credited amount: the wallet receives amount - fee.
func (s *LedgerServiceImpl) SubmitCardDeposit(ctx context.Context, req ports.CardDepositRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Amount.Cents < s.cfg.CardDepositMinCents || req.Amount.Cents > s.cfg.CardDepositMaxCents {
		return nil, apperror.ErrAmountOutOfRange(
			domain.NewMoney(s.cfg.CardDepositMinCents, req.Amount.Currency).Decimal(),
			domain.NewMoney(s.cfg.CardDepositMaxCents, req.Amount.Currency).Decimal(),
		)
	}
	if req.CardToken == "" {
		return nil, apperror.Validation("card token is required")
	}

	fee, err := s.feePolicy.FeeFor(domain.TransactionTypeCardDeposit, req.Amount)
	if err != nil {
		return nil, err
	}
	net, err := req.Amount.Sub(fee)
	if err != nil || !net.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	ref, err := s.refGen.Generate(ctx, domain.TransactionTypeCardDeposit)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	owners := []uuid.UUID{req.OwnerID}
	if s.collectsFee(fee) {
		owners = append(owners, s.feeOwner)
	}
	wallets, err := s.lockWallets(ctx, dbTx, owners)
	if err != nil {
		return nil, err
	}
	wallet := wallets[req.OwnerID]
	if !wallet.IsActive {
		return nil, apperror.ErrInactiveWallet()
	}

	now := s.now()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeCardDeposit,
		ReceiverID:  &req.OwnerID,
		Amount:      req.Amount,
		Fee:         fee,
		Total:       req.Amount,
		Reference:   ref,
		Description: fmt.Sprintf("Card deposit %s", req.CardToken),
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := s.creditWallet(ctx, dbTx, wallet, net, txn.ID); err != nil {
		return nil, err
	}
	if err := s.creditFee(ctx, dbTx, wallets, fee, txn.ID); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheTransaction(ctx, txn)
	s.log.Info().Str("reference", ref).Int64("net_cents", net.Cents).Msg("card deposit completed")
	return txn, nil
}

// SubmitMerchantPayment pays an in-store merchant identified by code.
func (s *LedgerServiceImpl) SubmitMerchantPayment(ctx context.Context, req ports.MerchantPaymentRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !validMerchantCode(req.MerchantCode) {
		return nil, apperror.Validation("invalid merchant code")
	}
	if err := s.pinSvc.CheckPin(ctx, req.OwnerID, req.Pin); err != nil {
		return nil, err
	}

	fee, err := s.feePolicy.FeeFor(domain.TransactionTypeMerchantPayment, req.Amount)
	if err != nil {
		return nil, err
	}

	ref, err := s.refGen.Generate(ctx, domain.TransactionTypeMerchantPayment)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Payment to merchant %s", req.MerchantCode)
	}

	txn, err := s.debitOnlyFlow(ctx, debitOnlyParams{
		ownerID:     req.OwnerID,
		kind:        domain.TransactionTypeMerchantPayment,
		amount:      req.Amount,
		fee:         fee,
		total:       req.Amount,
		reference:   ref,
		description: description,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("reference", ref).Str("merchant_code", req.MerchantCode).Msg("merchant payment completed")
	return txn, nil
}

// SubmitAgentWithdrawal starts a cash-out: the client's wallet is
// debited amount+fee immediately and the transaction stays pending
// until an agent confirms the cash handover.
func (s *LedgerServiceImpl) SubmitAgentWithdrawal(ctx context.Context, req ports.AgentWithdrawalRequest) (*ports.AgentWithdrawalResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Amount.Cents < s.cfg.AgentWithdrawalMinCents || req.Amount.Cents > s.cfg.AgentWithdrawalMaxCents {
		return nil, apperror.ErrAmountOutOfRange(
			domain.NewMoney(s.cfg.AgentWithdrawalMinCents, req.Amount.Currency).Decimal(),
			domain.NewMoney(s.cfg.AgentWithdrawalMaxCents, req.Amount.Currency).Decimal(),
		)
	}
	if !validAgentCode(req.AgentCode) {
		return nil, apperror.Validation("agent code must be 'A' followed by 6 characters")
	}
	if err := s.pinSvc.CheckPin(ctx, req.OwnerID, req.Pin); err != nil {
		return nil, err
	}

	profile, err := s.agentRepo.GetProfileByCode(ctx, req.AgentCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find agent profile: %w", err))
	}
	if profile == nil || !profile.IsApproved {
		return nil, apperror.ErrUnauthorizedActor()
	}

	fee, err := s.feePolicy.FeeFor(domain.TransactionTypeAgentWithdrawal, req.Amount)
	if err != nil {
		return nil, err
	}
	total, err := req.Amount.Add(fee)
	if err != nil {
		return nil, apperror.ErrCurrencyMismatch()
	}

	ref, err := s.refGen.Generate(ctx, domain.TransactionTypeAgentWithdrawal)
	if err != nil {
		return nil, err
	}
	feeRef, err := s.refGen.Generate(ctx, domain.TransactionTypeWithdrawalFee)
	if err != nil {
		return nil, err
	}
	// Generated before the unit of work so a failure here cannot leave
	// a committed debit without a code to hand the agent.
	code, err := confirmationCode()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	owners := []uuid.UUID{req.OwnerID}
	if s.collectsFee(fee) {
		owners = append(owners, s.feeOwner)
	}
	wallets, err := s.lockWallets(ctx, dbTx, owners)
	if err != nil {
		return nil, err
	}
	wallet := wallets[req.OwnerID]

	if !wallet.IsActive {
		return nil, apperror.ErrInactiveWallet()
	}
	if !wallet.CanDebit(total) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := s.now()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeAgentWithdrawal,
		SenderID:    &req.OwnerID,
		ReceiverID:  &profile.OwnerID,
		Amount:      req.Amount,
		Fee:         fee,
		Total:       total,
		Reference:   ref,
		Description: fmt.Sprintf("Agent cash withdrawal at %s, code %s", req.AgentCode, code),
		Status:      domain.TransactionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	feeTxn := &domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeWithdrawalFee,
		SenderID:    &req.OwnerID,
		Amount:      fee,
		Fee:         domain.Zero(fee.Currency),
		Total:       fee,
		Reference:   feeRef,
		Description: fmt.Sprintf("Fee for %s", ref),
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, feeTxn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create fee transaction: %w", err))
	}

	if err := s.debitWallet(ctx, dbTx, wallet, total, txn.ID); err != nil {
		return nil, err
	}
	if err := s.creditFee(ctx, dbTx, wallets, fee, feeTxn.ID); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("reference", ref).
		Str("agent_code", req.AgentCode).
		Int64("total_cents", total.Cents).
		Msg("agent withdrawal submitted")
	return &ports.AgentWithdrawalResult{Transaction: txn, ConfirmationCode: code}, nil
}

// ConfirmAgentWithdrawal completes a pending cash-out: the confirming
// agent must hold an approved profile and be the agent the submission
// targeted; the amount is checked against the agent's limits, the agent
// wallet is credited, and commission is recorded at the profile's
// snapshot rate.
func (s *LedgerServiceImpl) ConfirmAgentWithdrawal(ctx context.Context, reference string, agentOwnerID uuid.UUID) (*domain.Transaction, error) {
	profile, err := s.agentRepo.GetProfileByOwner(ctx, agentOwnerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find agent profile: %w", err))
	}
	if profile == nil || !profile.IsApproved {
		return nil, apperror.ErrUnauthorizedActor()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// The row lock serializes confirm and cancel on the same withdrawal:
	// whichever unit wins sees pending, the other sees the terminal
	// status once the lock is released.
	txn, err := s.txRepo.GetByReferenceForUpdate(ctx, dbTx, reference)
	if err != nil {
		return nil, lockError("find withdrawal", err)
	}
	if txn == nil || txn.Type != domain.TransactionTypeAgentWithdrawal {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	if !txn.Cancellable() {
		return nil, apperror.ErrNotPending()
	}
	if txn.ReceiverID == nil || *txn.ReceiverID != agentOwnerID {
		return nil, apperror.ErrUnauthorizedActor()
	}

	wallets, err := s.lockWallets(ctx, dbTx, []uuid.UUID{agentOwnerID})
	if err != nil {
		return nil, err
	}
	agentWallet := wallets[agentOwnerID]
	if !agentWallet.IsActive {
		return nil, apperror.ErrInactiveWallet()
	}

	if err := s.limits.TryConsume(ctx, dbTx, agentOwnerID, txn.Amount.Cents); err != nil {
		return nil, err
	}

	if err := s.creditWallet(ctx, dbTx, agentWallet, txn.Amount, txn.ID); err != nil {
		return nil, err
	}

	now := s.now()
	commission := &domain.AgentCommission{
		ID:              uuid.New(),
		AgentID:         agentOwnerID,
		TransactionID:   txn.ID,
		Amount:          txn.Amount.Percent(profile.CommissionRateBasis),
		RateBasisPoints: profile.CommissionRateBasis,
		PeriodStart:     monthStart(now),
		PeriodEnd:       monthStart(now).AddDate(0, 1, 0),
		CreatedAt:       now,
	}
	if err := s.agentRepo.CreateCommission(ctx, dbTx, commission); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create commission: %w", err))
	}

	if err := s.txRepo.UpdateStatus(ctx, dbTx, txn.ID, domain.TransactionStatusCompleted); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete withdrawal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	txn.Status = domain.TransactionStatusCompleted
	txn.UpdatedAt = now
	txn.ProcessedAt = &now
	s.cacheTransaction(ctx, txn)
	s.log.Info().
		Str("reference", reference).
		Str("agent_code", profile.AgentCode).
		Int64("commission_cents", commission.Amount.Cents).
		Msg("agent withdrawal confirmed")
	return txn, nil
}

// CancelAgentWithdrawal aborts a pending cash-out, returning amount and
// fee to the client. Only the submitting client may cancel.
func (s *LedgerServiceImpl) CancelAgentWithdrawal(ctx context.Context, reference string, actorID uuid.UUID) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Same row lock as ConfirmAgentWithdrawal, so an in-flight confirm
	// and cancel of the same withdrawal cannot both commit.
	txn, err := s.txRepo.GetByReferenceForUpdate(ctx, dbTx, reference)
	if err != nil {
		return nil, lockError("find withdrawal", err)
	}
	if txn == nil || txn.Type != domain.TransactionTypeAgentWithdrawal {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	if txn.SenderID == nil || *txn.SenderID != actorID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if !txn.Cancellable() {
		return nil, apperror.ErrNotPending()
	}

	owners := []uuid.UUID{actorID}
	if s.collectsFee(txn.Fee) {
		owners = append(owners, s.feeOwner)
	}
	wallets, err := s.lockWallets(ctx, dbTx, owners)
	if err != nil {
		return nil, err
	}

	if err := s.creditWallet(ctx, dbTx, wallets[actorID], txn.Total, txn.ID); err != nil {
		return nil, err
	}
	if s.collectsFee(txn.Fee) {
		feeWallet := wallets[s.feeOwner]
		if !feeWallet.CanDebit(txn.Fee) {
			return nil, apperror.InternalError(fmt.Errorf("fee wallet cannot cover reversal of %s", reference))
		}
		if err := s.debitWallet(ctx, dbTx, feeWallet, txn.Fee, txn.ID); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.UpdateStatus(ctx, dbTx, txn.ID, domain.TransactionStatusCancelled); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("cancel withdrawal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	now := s.now()
	txn.Status = domain.TransactionStatusCancelled
	txn.UpdatedAt = now
	txn.ProcessedAt = &now
	s.log.Info().Str("reference", reference).Msg("agent withdrawal cancelled")
	return txn, nil
}

// AdjustWalletAdmin applies a manual balance correction. Credits are
// recorded as deposits, debits as withdrawals, both with zero fee.
func (s *LedgerServiceImpl) AdjustWalletAdmin(ctx context.Context, req ports.AdminAdjustRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Reason == "" {
		return nil, apperror.Validation("adjustment reason is required")
	}

	var kind domain.TransactionType
	switch req.Direction {
	case ports.AdjustCredit:
		kind = domain.TransactionTypeDeposit
	case ports.AdjustDebit:
		kind = domain.TransactionTypeWithdrawal
	default:
		return nil, apperror.Validation("direction must be credit or debit")
	}

	ref, err := adminReference()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallets, err := s.lockWallets(ctx, dbTx, []uuid.UUID{req.OwnerID})
	if err != nil {
		return nil, err
	}
	wallet := wallets[req.OwnerID]
	if !wallet.IsActive {
		return nil, apperror.ErrInactiveWallet()
	}
	if req.Direction == ports.AdjustDebit && !wallet.CanDebit(req.Amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := s.now()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		Type:        kind,
		Amount:      req.Amount,
		Fee:         domain.Zero(req.Amount.Currency),
		Total:       req.Amount,
		Reference:   ref,
		Description: fmt.Sprintf("Admin adjustment: %s", req.Reason),
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProcessedAt: &now,
	}
	if req.Direction == ports.AdjustCredit {
		txn.ReceiverID = &req.OwnerID
	} else {
		txn.SenderID = &req.OwnerID
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if req.Direction == ports.AdjustCredit {
		err = s.creditWallet(ctx, dbTx, wallet, req.Amount, txn.ID)
	} else {
		err = s.debitWallet(ctx, dbTx, wallet, req.Amount, txn.ID)
	}
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheTransaction(ctx, txn)
	s.log.Info().
		Str("reference", ref).
		Str("owner_id", req.OwnerID.String()).
		Str("direction", string(req.Direction)).
		Int64("amount_cents", req.Amount.Cents).
		Msg("admin adjustment applied")
	return txn, nil
}

// GetByReference returns a transaction visible to the actor. Completed
// transactions are served from the Redis cache when possible.
func (s *LedgerServiceImpl) GetByReference(ctx context.Context, reference string, actorID uuid.UUID) (*domain.Transaction, error) {
	if cached, err := s.txCache.Get(ctx, reference); err != nil {
		s.log.Warn().Err(err).Str("reference", reference).Msg("transaction cache read failed")
	} else if cached != nil {
		var txn domain.Transaction
		if err := json.Unmarshal(cached, &txn); err == nil {
			if err := authorizeView(&txn, actorID); err != nil {
				return nil, err
			}
			return &txn, nil
		}
	}

	txn, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	if err := authorizeView(txn, actorID); err != nil {
		return nil, err
	}
	if txn.Status == domain.TransactionStatusCompleted {
		s.cacheTransaction(ctx, txn)
	}
	return txn, nil
}

// ListByOwner returns the owner's transaction page.
func (s *LedgerServiceImpl) ListByOwner(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, total, nil
}

// --- internals ---

type debitOnlyParams struct {
	ownerID     uuid.UUID
	kind        domain.TransactionType
	amount      domain.Money
	fee         domain.Money
	total       domain.Money
	reference   string
	description string
	extra       func(ctx context.Context, dbTx pgx.Tx, txn *domain.Transaction) error
}

// debitOnlyFlow is the shared atomic unit for flows that leave the
// wallet system: lock, balance check, debit with history, fee credit,
// completed transaction row, optional detail record, commit.
func (s *LedgerServiceImpl) debitOnlyFlow(ctx context.Context, p debitOnlyParams) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	owners := []uuid.UUID{p.ownerID}
	if s.collectsFee(p.fee) {
		owners = append(owners, s.feeOwner)
	}
	wallets, err := s.lockWallets(ctx, dbTx, owners)
	if err != nil {
		return nil, err
	}
	wallet := wallets[p.ownerID]

	if !wallet.IsActive {
		return nil, apperror.ErrInactiveWallet()
	}
	if wallet.Balance.Currency != p.amount.Currency {
		return nil, apperror.ErrCurrencyMismatch()
	}
	if !wallet.CanDebit(p.total) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := s.now()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		Type:        p.kind,
		SenderID:    &p.ownerID,
		Amount:      p.amount,
		Fee:         p.fee,
		Total:       p.total,
		Reference:   p.reference,
		Description: p.description,
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProcessedAt: &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := s.debitWallet(ctx, dbTx, wallet, p.total, txn.ID); err != nil {
		return nil, err
	}
	if err := s.creditFee(ctx, dbTx, wallets, p.fee, txn.ID); err != nil {
		return nil, err
	}
	if p.extra != nil {
		if err := p.extra(ctx, dbTx, txn); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create detail record: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheTransaction(ctx, txn)
	return txn, nil
}

// lockWallets resolves the owners' wallets and locks them FOR UPDATE in
// ascending wallet-id byte order, so two concurrent units touching the
// same wallets always acquire locks in the same sequence.
func (s *LedgerServiceImpl) lockWallets(ctx context.Context, dbTx pgx.Tx, ownerIDs []uuid.UUID) (map[uuid.UUID]*domain.Wallet, error) {
	type target struct {
		ownerID  uuid.UUID
		walletID uuid.UUID
	}
	targets := make([]target, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		w, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("resolve wallet: %w", err))
		}
		if w == nil {
			return nil, apperror.ErrWalletNotFound()
		}
		targets = append(targets, target{ownerID: ownerID, walletID: w.ID})
	}

	sort.Slice(targets, func(i, j int) bool {
		return bytes.Compare(targets[i].walletID[:], targets[j].walletID[:]) < 0
	})

	wallets := make(map[uuid.UUID]*domain.Wallet, len(targets))
	for _, t := range targets {
		w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, t.walletID)
		if err != nil {
			return nil, lockError("lock wallet", err)
		}
		if w == nil {
			return nil, apperror.ErrWalletNotFound()
		}
		wallets[t.ownerID] = w
	}
	return wallets, nil
}

// debitWallet updates the balance and appends the matching debit row.
// The wallet must already be locked.
func (s *LedgerServiceImpl) debitWallet(ctx context.Context, dbTx pgx.Tx, w *domain.Wallet, amount domain.Money, txID uuid.UUID) error {
	before := w.Balance
	after, err := before.Sub(amount)
	if err != nil {
		return apperror.ErrCurrencyMismatch()
	}
	if after.IsNegative() {
		return apperror.ErrInsufficientFunds()
	}
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, w.ID, after.Cents); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	entry := domain.NewHistoryEntry(w.ID, txID, domain.OperationDebit, amount, before, after)
	if err := s.historyRepo.Create(ctx, dbTx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("append history: %w", err))
	}
	w.Balance = after
	return nil
}

// creditWallet updates the balance and appends the matching credit row.
// The wallet must already be locked.
func (s *LedgerServiceImpl) creditWallet(ctx context.Context, dbTx pgx.Tx, w *domain.Wallet, amount domain.Money, txID uuid.UUID) error {
	before := w.Balance
	after, err := before.Add(amount)
	if err != nil {
		return apperror.ErrCurrencyMismatch()
	}
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, w.ID, after.Cents); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	entry := domain.NewHistoryEntry(w.ID, txID, domain.OperationCredit, amount, before, after)
	if err := s.historyRepo.Create(ctx, dbTx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("append history: %w", err))
	}
	w.Balance = after
	return nil
}

// creditFee moves the fee into the revenue wallet inside the same unit.
func (s *LedgerServiceImpl) creditFee(ctx context.Context, dbTx pgx.Tx, wallets map[uuid.UUID]*domain.Wallet, fee domain.Money, txID uuid.UUID) error {
	if !s.collectsFee(fee) {
		return nil
	}
	feeWallet, ok := wallets[s.feeOwner]
	if !ok {
		return apperror.InternalError(fmt.Errorf("fee wallet not locked"))
	}
	return s.creditWallet(ctx, dbTx, feeWallet, fee, txID)
}

func (s *LedgerServiceImpl) collectsFee(fee domain.Money) bool {
	return fee.IsPositive() && s.feeOwner != uuid.Nil
}

// cacheTransaction stores the completed transaction JSON best-effort.
func (s *LedgerServiceImpl) cacheTransaction(ctx context.Context, txn *domain.Transaction) {
	data, err := json.Marshal(txn)
	if err != nil {
		return
	}
	if err := s.txCache.Set(ctx, txn.Reference, data, transactionCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("reference", txn.Reference).Msg("failed to cache transaction")
	}
}

// authorizeView allows only the transaction's parties to read it.
// uuid.Nil skips the check for internal callers.
func authorizeView(txn *domain.Transaction, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return nil
	}
	if txn.SenderID != nil && *txn.SenderID == actorID {
		return nil
	}
	if txn.ReceiverID != nil && *txn.ReceiverID == actorID {
		return nil
	}
	return apperror.ErrUnauthorizedActor()
}

// validMerchantCode checks the "M" + 6 characters format.
func validMerchantCode(code string) bool {
	return validPartyCode(code, 'M')
}

// validAgentCode checks the "A" + 6 characters format.
func validAgentCode(code string) bool {
	return validPartyCode(code, 'A')
}

func validPartyCode(code string, prefix byte) bool {
	if len(code) != 7 || code[0] != prefix {
		return false
	}
	for _, c := range code[1:] {
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func adminReference() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reference entropy: %w", err)
	}
	return fmt.Sprintf("ADM-%d-%s", time.Now().UTC().Unix(), strings.ToUpper(hex.EncodeToString(buf))), nil
}

func confirmationCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating confirmation code: %w", err)
	}
	return "AW" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

func carrierReference(c domain.Carrier) string {
	prefix := "DG-"
	if c == domain.CarrierNatcom {
		prefix = "NT-"
	}
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return prefix + "000000"
	}
	return prefix + strings.ToUpper(hex.EncodeToString(buf))
}

func providerReference() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "PR-000000"
	}
	return "PR-" + strings.ToUpper(hex.EncodeToString(buf))
}
