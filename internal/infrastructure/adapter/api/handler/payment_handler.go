package handler

import (
	"net/http"

	domainerr "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler receives payment confirmation webhooks from the external
// checkout collaborator and applies them as top-ups
type PaymentHandler struct {
	applier usecase.TopUpApplier
	logger  coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(applier usecase.TopUpApplier, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		applier: applier,
		logger:  logger,
	}
}

// Confirm handles the POST /payments/confirmations endpoint. A repeated
// reference returns 409 without crediting again.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req dto.PaymentConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid payment confirmation payload",
		})
		return
	}

	result, err := h.applier.ApplyConfirmedPayment(c.Request.Context(), req.AccountID, req.Credits, req.Reference)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"

		switch {
		case domainerr.IsDuplicatePaymentError(err):
			status = http.StatusConflict
			message = "Payment reference already applied"
		case domainerr.IsAccountNotFoundError(err):
			status = http.StatusNotFound
			message = "Account not found"
		case domainerr.IsConcurrentConflictError(err):
			status = http.StatusConflict
			message = "Operation conflicted with a concurrent request, please retry"
		case domainerr.IsStoreUnavailableError(err):
			status = http.StatusServiceUnavailable
			message = "Account store unavailable"
		}

		h.logger.Warn("Payment confirmation rejected", map[string]any{
			"account_id": req.AccountID,
			"reference":  req.Reference,
			"status":     status,
			"error":      err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.PaymentConfirmationResponse{
		AccountID:  result.AccountID,
		NewBalance: result.NewBalance,
		Reference:  result.Reference,
	})
}
