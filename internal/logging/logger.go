package logging

import (
	"go.uber.org/zap"
)

// NewLogger builds a production ready structured logger.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	return cfg.Build()
}

// WithOperation enriches the logger with operation and subject identifiers.
// The subject is whatever identifies the unit of work: a scan id, an email,
// a session id.
func WithOperation(logger *zap.Logger, operation, subject string) *zap.Logger {
	fields := []zap.Field{zap.String("operation", operation)}
	if subject != "" {
		fields = append(fields, zap.String("subject", subject))
	}
	return logger.With(fields...)
}
