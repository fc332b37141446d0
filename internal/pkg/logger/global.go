package logger

import (
	"context"
	"sync"

	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// once ensures the fallback logger is built only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance
// This should be called once during application startup
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
// If no logger is set, it returns a default production logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	current := globalLogger
	mu.RUnlock()
	if current != nil {
		return current
	}

	once.Do(func() {
		defaultLogger, _ := zap.NewProduction()
		mu.Lock()
		if globalLogger == nil {
			globalLogger = &ZapLogger{
				Logger:  defaultLogger,
				sugar:   defaultLogger.Sugar(),
				service: "authnotify",
			}
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithFields returns a logger with additional fields using the global logger
func WithFields(fields map[string]interface{}) *zap.Logger {
	return GetGlobalLogger().WithFields(fields)
}

// WithError returns a logger with an error field using the global logger
func WithError(err error) *zap.Logger {
	return GetGlobalLogger().WithError(err)
}

// contextFields pulls request correlation values out of ctx
func contextFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if userID := requestcontext.GetUserID(ctx); userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	return fields
}

// InfoCtx logs an info message tagged with the request carried by ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, contextFields(ctx, fields)...)
}

// WarnCtx logs a warning message tagged with the request carried by ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, contextFields(ctx, fields)...)
}

// ErrorCtx logs an error message tagged with the request carried by ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, contextFields(ctx, fields)...)
}

// DebugCtx logs a debug message tagged with the request carried by ctx
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, contextFields(ctx, fields)...)
}

// LogWithContext logs a message at the specified level with context
func LogWithContext(ctx context.Context, level zapcore.Level, msg string, fields ...Field) {
	switch level {
	case zapcore.DebugLevel:
		DebugCtx(ctx, msg, fields...)
	case zapcore.WarnLevel:
		WarnCtx(ctx, msg, fields...)
	case zapcore.ErrorLevel:
		ErrorCtx(ctx, msg, fields...)
	case zapcore.FatalLevel:
		Fatal(msg, contextFields(ctx, fields)...)
	default:
		InfoCtx(ctx, msg, fields...)
	}
}
