package handler

import (
	"net/http"

	"github.com/google/uuid"
	domainerr "github.com/vidaplus/credit-ledger/internal/domain/error"
	"github.com/vidaplus/credit-ledger/internal/domain/port/capability"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// GenerationHandler fronts the metered generation capability. Every call
// goes through the consumption gate before the provider is touched; the
// debit is a reservation and is not reversed if the provider fails.
type GenerationHandler struct {
	gate         usecase.ConsumptionGate
	generator    capability.Generator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cost         int64
}

// NewGenerationHandler creates a new generation handler instance
func NewGenerationHandler(
	gate usecase.ConsumptionGate,
	generator capability.Generator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cost int64,
) *GenerationHandler {
	return &GenerationHandler{
		gate:         gate,
		generator:    generator,
		timeProvider: timeProvider,
		logger:       logger,
		cost:         cost,
	}
}

// Generate handles the POST /accounts/{accountId}/generations endpoint
func (h *GenerationHandler) Generate(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid generation payload",
		})
		return
	}

	auth, err := h.gate.Authorize(c.Request.Context(), accountID, h.cost, h.timeProvider.Now())
	if err != nil {
		h.respondGateError(c, accountID, err)
		return
	}

	requestID := uuid.NewString()
	result, err := h.generator.Generate(c.Request.Context(), capability.GenerationRequest{
		RequestID: requestID,
		AccountID: accountID,
		Prompt:    req.Prompt,
	})
	if err != nil {
		// Credits are already reserved; report the provider failure without
		// refunding so the audit trail matches the balance
		h.logger.Error("Generation failed after debit", map[string]any{
			"account_id": accountID,
			"request_id": requestID,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Generation provider failed; credits were reserved",
		})
		return
	}

	c.JSON(http.StatusOK, dto.GenerationResponse{
		RequestID:  result.RequestID,
		Content:    result.Content,
		NewBalance: auth.NewBalance,
		Recharged:  auth.Recharged,
	})
}

func (h *GenerationHandler) respondGateError(c *gin.Context, accountID uint64, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsInsufficientCreditsError(err):
		// Distinct status so the client can prompt a top-up
		status = http.StatusPaymentRequired
		message = "Insufficient credits"
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

	h.logger.Warn("Generation request denied", map[string]any{
		"account_id": accountID,
		"status":     status,
		"error":      err.Error(),
	})
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
