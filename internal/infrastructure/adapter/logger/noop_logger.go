package logger

import "github.com/vidaplus/credit-ledger/internal/domain/port/core"

// NoopLogger discards all log output. Used in tests and benchmarks where
// logging noise is unwanted.
type NoopLogger struct{}

// NewNoopLogger creates a logger that does nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{}
}

func (l *NoopLogger) SetLevel(core.LogLevel)       {}
func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any)  {}
func (l *NoopLogger) Warn(string, map[string]any)  {}
func (l *NoopLogger) Error(string, map[string]any) {}
func (l *NoopLogger) Flush() error                 { return nil }
