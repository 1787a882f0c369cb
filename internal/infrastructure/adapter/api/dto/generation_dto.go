package dto

// GenerationRequest asks for one metered generation call
type GenerationRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerationResponse carries the provider's content plus the post-debit
// balance so clients can show remaining credits without a second call
type GenerationResponse struct {
	RequestID  string `json:"requestId"`
	Content    string `json:"content"`
	NewBalance int64  `json:"newBalance"`
	Recharged  bool   `json:"recharged"`
}
