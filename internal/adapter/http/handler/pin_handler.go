package handler

import (
	"net/http"
	"time"

	"mobile-money-ledger/internal/adapter/http/dto"
	"mobile-money-ledger/internal/adapter/http/middleware"
	"mobile-money-ledger/internal/core/ports"
	"mobile-money-ledger/pkg/apperror"
	"mobile-money-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// PinHandler handles PIN management endpoints.
type PinHandler struct {
	pinSvc ports.PinService
}

// NewPinHandler creates a new PinHandler.
func NewPinHandler(pinSvc ports.PinService) *PinHandler {
	return &PinHandler{pinSvc: pinSvc}
}

// SetPin handles POST /api/v1/pin.
func (h *PinHandler) SetPin(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.SetPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.pinSvc.SetPin(c.Request.Context(), actorID, req.Pin); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// VerifyPin handles POST /api/v1/pin/verify.
func (h *PinHandler) VerifyPin(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.pinSvc.CheckPin(c.Request.Context(), actorID, req.Pin); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"valid": true})
}

// Status handles GET /api/v1/pin/status.
func (h *PinHandler) Status(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	status, err := h.pinSvc.Status(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.PinStatusResponse{IsSet: status.IsSet, Attempts: status.Attempts}
	if status.LockedUntil != nil {
		s := status.LockedUntil.Format(time.RFC3339)
		resp.LockedUntil = &s
	}
	response.OK(c, resp)
}
