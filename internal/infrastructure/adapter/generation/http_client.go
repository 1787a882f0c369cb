package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vidaplus/credit-ledger/internal/domain/port/capability"
	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
)

// Config holds the external generation provider settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPClient calls the external generation provider over HTTP. It is only
// reached after the consumption gate debited the caller; a provider failure
// here does not refund the charge.
type HTTPClient struct {
	cfg    Config
	client *http.Client
	logger coreport.Logger
}

// NewHTTPClient creates a generation client
func NewHTTPClient(cfg Config, logger coreport.Logger) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type generationPayload struct {
	RequestID string `json:"requestId"`
	Prompt    string `json:"prompt"`
}

type generationReply struct {
	Content string `json:"content"`
}

// Generate forwards the prompt to the provider and returns its content
func (c *HTTPClient) Generate(ctx context.Context, req capability.GenerationRequest) (*capability.GenerationResult, error) {
	body, err := json.Marshal(generationPayload{
		RequestID: req.RequestID,
		Prompt:    req.Prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/generations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("Generation provider call failed", map[string]any{
			"request_id": req.RequestID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("generation provider unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Generation provider returned error", map[string]any{
			"request_id": req.RequestID,
			"status":     resp.StatusCode,
			"body":       string(payload),
		})
		return nil, fmt.Errorf("generation provider returned status %d", resp.StatusCode)
	}

	var reply generationReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	return &capability.GenerationResult{
		RequestID: req.RequestID,
		Content:   reply.Content,
	}, nil
}
