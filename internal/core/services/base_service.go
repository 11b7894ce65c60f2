package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/settlement_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Logger *slog.Logger
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithLogger sets the logger used when the request context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *BaseService) {
		s.Logger = logger
	}
}

// GetLogger returns the request-scoped logger from context, falling back to the
// injected logger and then to the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.LoggerFromCtxOr(ctx, s.Logger)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
