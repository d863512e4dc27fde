package handler

import (
	"mobile-money-ledger/internal/adapter/http/dto"
	"mobile-money-ledger/internal/adapter/http/middleware"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
	"mobile-money-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles the agent cash-out lifecycle.
type WithdrawalHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(ledgerSvc ports.LedgerService) *WithdrawalHandler {
	return &WithdrawalHandler{ledgerSvc: ledgerSvc}
}

// Submit handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) Submit(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.AgentWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.ledgerSvc.SubmitAgentWithdrawal(c.Request.Context(), ports.AgentWithdrawalRequest{
		OwnerID:   actorID,
		AgentCode: req.AgentCode,
		Amount:    amount,
		Pin:       req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.WithdrawalResponse{
		Transaction:      toTransactionResponse(result.Transaction),
		ConfirmationCode: result.ConfirmationCode,
	})
}

// Confirm handles POST /api/v1/withdrawals/:reference/confirm. The
// caller is the agent handing out cash.
func (h *WithdrawalHandler) Confirm(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	txn, err := h.ledgerSvc.ConfirmAgentWithdrawal(c.Request.Context(), c.Param("reference"), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponse(txn))
}

// Cancel handles POST /api/v1/withdrawals/:reference/cancel. Only the
// submitting client may cancel.
func (h *WithdrawalHandler) Cancel(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	txn, err := h.ledgerSvc.CancelAgentWithdrawal(c.Request.Context(), c.Param("reference"), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponse(txn))
}
