package dto

// RegisterAccountRequest provisions a credit account. The identifier comes
// from the identity collaborator, already verified.
type RegisterAccountRequest struct {
	AccountID uint64 `json:"accountId" binding:"required,gt=0"`
	AgeYears  int    `json:"ageYears" binding:"gte=0,lte=150"`
}

// AccountResponse represents the API response for an account
type AccountResponse struct {
	AccountID      uint64 `json:"accountId"`
	Balance        int64  `json:"balance"`
	AgeYears       int    `json:"ageYears"`
	LastRechargeAt string `json:"lastRechargeAt"`
}

// BalanceResponse represents the API response for an effective balance read.
// Recharged is true when this read applied a periodic replenishment, so the
// caller can surface a renewal notice.
type BalanceResponse struct {
	AccountID uint64 `json:"accountId"`
	Balance   int64  `json:"balance"`
	Recharged bool   `json:"recharged"`
}

// StatementEntry is one audit-trail record in an account statement
type StatementEntry struct {
	ID          uint64 `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Reference   string `json:"reference,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// StatementResponse is the full audit trail for an account
type StatementResponse struct {
	AccountID uint64           `json:"accountId"`
	Records   []StatementEntry `json:"records"`
}
