package capability

import "context"

// GenerationRequest is the payload forwarded to the external content provider
type GenerationRequest struct {
	RequestID string
	AccountID uint64
	Prompt    string
}

// GenerationResult is the provider's answer
type GenerationResult struct {
	RequestID string
	Content   string
}

// Generator is the metered external capability. Implementations are invoked
// only after the consumption gate authorized the call; a provider failure
// after authorization does not refund the debit.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}
