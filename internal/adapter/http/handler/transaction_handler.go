package handler

import (
	"strconv"

	"mobile-money-ledger/internal/adapter/http/dto"
	"mobile-money-ledger/internal/adapter/http/middleware"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
	"mobile-money-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles transaction submit and query endpoints.
type TransactionHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerSvc ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerSvc: ledgerSvc}
}

// Transfer handles POST /api/v1/transactions/transfer.
func (h *TransactionHandler) Transfer(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverOwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid receiver id"))
		return
	}

	txn, err := h.ledgerSvc.SubmitTransfer(c.Request.Context(), ports.TransferRequest{
		SenderOwnerID:   actorID,
		ReceiverOwnerID: receiverID,
		Amount:          amount,
		Description:     req.Description,
		Pin:             req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// TopUp handles POST /api/v1/transactions/topup.
func (h *TransactionHandler) TopUp(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.ledgerSvc.SubmitTopUp(c.Request.Context(), ports.TopUpRequest{
		OwnerID:        actorID,
		Amount:         amount,
		RecipientPhone: req.RecipientPhone,
		Carrier:        domain.Carrier(req.Carrier),
		Pin:            req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// BillPayment handles POST /api/v1/transactions/bills.
func (h *TransactionHandler) BillPayment(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.BillPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.ledgerSvc.SubmitBillPayment(c.Request.Context(), ports.BillPaymentRequest{
		OwnerID:       actorID,
		Amount:        amount,
		BillType:      domain.BillType(req.BillType),
		AccountNumber: req.AccountNumber,
		Provider:      req.Provider,
		Pin:           req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// CardDeposit handles POST /api/v1/transactions/card-deposit.
func (h *TransactionHandler) CardDeposit(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.CardDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.ledgerSvc.SubmitCardDeposit(c.Request.Context(), ports.CardDepositRequest{
		OwnerID:   actorID,
		Amount:    amount,
		CardToken: req.CardToken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// MerchantPayment handles POST /api/v1/transactions/merchant-payment.
func (h *TransactionHandler) MerchantPayment(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.MerchantPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.ledgerSvc.SubmitMerchantPayment(c.Request.Context(), ports.MerchantPaymentRequest{
		OwnerID:      actorID,
		MerchantCode: req.MerchantCode,
		Amount:       amount,
		Description:  req.Description,
		Pin:          req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// GetByReference handles GET /api/v1/transactions/:reference.
func (h *TransactionHandler) GetByReference(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	txn, err := h.ledgerSvc.GetByReference(c.Request.Context(), c.Param("reference"), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponse(txn))
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	params := ports.TransactionListParams{OwnerID: actorID}
	params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	params.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}
	if ty := c.Query("type"); ty != "" {
		kind := domain.TransactionType(ty)
		params.Type = &kind
	}
	if from := c.Query("from"); from != "" {
		if ts, err := strconv.ParseInt(from, 10, 64); err == nil {
			params.From = &ts
		}
	}
	if to := c.Query("to"); to != "" {
		if ts, err := strconv.ParseInt(to, 10, 64); err == nil {
			params.To = &ts
		}
	}

	txns, total, err := h.ledgerSvc.ListByOwner(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}
	response.OK(c, dto.TransactionListResponse{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}
