package time

import (
	"context"
	"time"

	"github.com/vidaplus/credit-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with real time operations
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Today returns the current day at midnight UTC
func (p *RealTimeProvider) Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Sleep pauses the current goroutine for the specified duration
func (p *RealTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
