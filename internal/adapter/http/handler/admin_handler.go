package handler

import (
	"mobile-money-ledger/internal/adapter/http/dto"
	"mobile-money-ledger/internal/core/domain"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
	"mobile-money-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles back-office wallet operations.
type AdminHandler struct {
	ledgerSvc ports.LedgerService
	walletSvc ports.WalletService
	reconSvc  ports.ReconciliationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledgerSvc ports.LedgerService, walletSvc ports.WalletService, reconSvc ports.ReconciliationService) *AdminHandler {
	return &AdminHandler{ledgerSvc: ledgerSvc, walletSvc: walletSvc, reconSvc: reconSvc}
}

// Adjust handles POST /api/v1/admin/wallets/:owner_id/adjust.
func (h *AdminHandler) Adjust(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid owner id"))
		return
	}

	var req dto.AdminAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := parseMoney(req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.ledgerSvc.AdjustWalletAdmin(c.Request.Context(), ports.AdminAdjustRequest{
		OwnerID:   ownerID,
		Direction: ports.AdjustDirection(req.Direction),
		Amount:    amount,
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toTransactionResponse(txn))
}

// Toggle handles POST /api/v1/admin/wallets/:owner_id/toggle.
func (h *AdminHandler) Toggle(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid owner id"))
		return
	}

	var req dto.ToggleWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.SetActive(c.Request.Context(), ownerID, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// Reconcile handles GET /api/v1/admin/wallets/:owner_id/reconcile.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("owner_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid owner id"))
		return
	}

	report, err := h.reconSvc.CheckWallet(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toReconciliationResponse(report, domain.CurrencyHTG))
}
