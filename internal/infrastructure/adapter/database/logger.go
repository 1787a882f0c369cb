package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/vidaplus/credit-ledger/internal/domain/port/core"
	"gorm.io/gorm/logger"
)

// GormLogger bridges GORM's logging into the domain logger
type GormLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewGormLogger creates a GORM logger backed by the domain logger
func NewGormLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	var logLevel logger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	return &GormLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: time.Second,
		timeProvider:  timeProvider,
	}
}

// LogMode sets the log level
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.logLevel = level
	return &cloned
}

// Info logs info messages
func (l *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"args": args})
	}
}

// Warn logs warn messages
func (l *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"args": args})
	}
}

// Error logs error messages
func (l *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"args": args})
	}
}

// Trace logs SQL statements with duration, flagging slow queries
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"duration_ms": elapsed.Milliseconds(),
		"rows":        rows,
		"sql":         sql,
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL error", fields)
	case elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL query", fields)
	}
}
