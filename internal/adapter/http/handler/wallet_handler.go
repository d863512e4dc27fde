package handler

import (
	"mobile-money-ledger/internal/adapter/http/middleware"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
	"mobile-money-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet read endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetMyWallet handles GET /api/v1/wallets/me. The balance is the
// latest committed value; in-flight units are not visible.
func (h *WalletHandler) GetMyWallet(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	wallet, err := h.walletSvc.GetByOwner(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}
