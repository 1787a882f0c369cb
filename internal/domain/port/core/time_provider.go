package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain. The recharge policy
// works at day granularity, so the ledger never reads the wall clock directly.
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Today returns the current instant truncated to day granularity in UTC
	Today() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// Sleep pauses the current goroutine for the specified duration
	Sleep(d time.Duration)
	// WithTimeout returns a context that will be canceled after the timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
