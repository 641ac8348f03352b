package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs expected failures (not found, forbidden, bad input)
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner denies access unless the resource belongs to the requesting user.
// Another user's resource is reported as not found, the same as a missing one.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, requestingUserID, resource string) error {
	if ownerID == requestingUserID {
		return nil
	}
	s.LogWarn(ctx, "Access to resource owned by another user denied",
		slog.String("resource", resource),
		slog.String("requesting_user_id", requestingUserID))
	return apperrors.NewNotFoundError(resource)
}

// logFailure picks the log level by error class so expected client errors stay out of the error stream.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrValidation):
		s.LogWarn(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}

// rollback is deferred after Begin; it is harmless once the transaction has been committed.
func (s *BaseService) rollback(ctx context.Context, tm portsrepo.TransactionManager, tx pgx.Tx) {
	if err := tm.Rollback(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to roll back transaction")
	}
}
