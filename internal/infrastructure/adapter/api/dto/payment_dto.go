package dto

// PaymentConfirmationRequest is the payment collaborator's webhook payload.
// The reference must be stable per payment: it is the idempotency key that
// keeps duplicate notifications from double-crediting.
type PaymentConfirmationRequest struct {
	AccountID uint64 `json:"accountId" binding:"required,gt=0"`
	Credits   int64  `json:"credits" binding:"required,gt=0"`
	Reference string `json:"reference" binding:"required"`
}

// PaymentConfirmationResponse reports the applied top-up
type PaymentConfirmationResponse struct {
	AccountID  uint64 `json:"accountId"`
	NewBalance int64  `json:"newBalance"`
	Reference  string `json:"reference"`
}
