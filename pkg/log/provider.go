package log

import (
	"context"
	"log/slog"
	"sync"
)

var (
	loggerMu      sync.RWMutex
	defaultLogger Logger
)

// GetLogger returns the package Logger. Until SetLogger or SetupLogger is
// called it writes through slog.Default().
func GetLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if defaultLogger == nil {
		return NewSlogLogger(slog.Default())
	}
	return defaultLogger
}

// SetLogger replaces the package Logger. nil restores the slog default.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	defaultLogger = l
}

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps l.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: l}
}

func (s *SlogLogger) Debug(msg string, fields ...any) { s.logger.Debug(msg, fields...) }

func (s *SlogLogger) Info(msg string, fields ...any) { s.logger.Info(msg, fields...) }

func (s *SlogLogger) Warn(msg string, fields ...any) { s.logger.Warn(msg, fields...) }

// Error logs at error level. A leading error value is attached as ErrAttr so
// ErrFmtHandler can add its stacktrace.
func (s *SlogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	s.logger.Error(msg, fields...)
}

func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: s.logger.With(fields...)}
}

func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}
