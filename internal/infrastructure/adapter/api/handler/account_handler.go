package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	domainerr "github.com/vidaplus/credit-ledger/internal/domain/error"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"github.com/vidaplus/credit-ledger/internal/domain/port/usecase"
	"github.com/vidaplus/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account provisioning and balance reads
type AccountHandler struct {
	accounts     usecase.AccountService
	ledger       usecase.LedgerEngine
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(
	accounts usecase.AccountService,
	ledger usecase.LedgerEngine,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountHandler {
	return &AccountHandler{
		accounts:     accounts,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register handles the POST /accounts endpoint
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid registration payload",
		})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), req.AccountID, req.AgeYears)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"
		if errors.Is(err, domainerr.ErrDuplicateAccount) {
			status = http.StatusConflict
			message = "Account already exists"
		}

		h.logger.Error("Account registration failed", map[string]any{
			"account_id": req.AccountID,
			"error":      err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.AccountResponse{
		AccountID:      account.ID,
		Balance:        account.Balance(),
		AgeYears:       account.AgeYears,
		LastRechargeAt: account.LastRechargeAt.Format(time.DateOnly),
	})
}

// GetBalance handles the GET /accounts/{accountId}/balance endpoint.
// The read applies any due recharge first, so the returned balance is the
// effective one and Recharged flags a renewal notice.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	result, err := h.ledger.EffectiveBalance(c.Request.Context(), accountID, h.timeProvider.Now())
	if err != nil {
		h.respondLedgerError(c, accountID, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: result.AccountID,
		Balance:   result.Balance,
		Recharged: result.Recharged,
	})
}

// GetStatement handles the GET /accounts/{accountId}/statement endpoint
func (h *AccountHandler) GetStatement(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	records, err := h.accounts.Statement(c.Request.Context(), accountID)
	if err != nil {
		h.respondLedgerError(c, accountID, err)
		return
	}

	entries := make([]dto.StatementEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, dto.StatementEntry{
			ID:          r.ID,
			Amount:      r.Amount,
			Description: r.Description,
			Kind:        string(r.Kind),
			Reference:   r.Reference,
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, dto.StatementResponse{
		AccountID: accountID,
		Records:   entries,
	})
}

func (h *AccountHandler) respondLedgerError(c *gin.Context, accountID uint64, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
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

	h.logger.Error("Account request failed", map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
		"status":     status,
	})
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseAccountID extracts and validates the accountId path parameter
func parseAccountID(c *gin.Context) (uint64, bool) {
	accountID, err := strconv.ParseUint(c.Param("accountId"), 10, 64)
	if err != nil || accountID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Invalid account ID format",
		})
		return 0, false
	}
	return accountID, true
}
