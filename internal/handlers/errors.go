package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func clientMessage(err error, status int) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError && appErr.Message != "" {
		return appErr.Message
	}
	switch status {
	case http.StatusBadRequest:
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			return "Unsupported currency"
		}
		return err.Error()
	case http.StatusUnauthorized:
		return "Invalid username or password"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusConflict:
		return "Resource already exists"
	case http.StatusBadGateway:
		return "Market data provider unavailable"
	}
	return ""
}

// respondError writes the mapped status for err. Server-side failures get fallback as
// their message and are logged at error level; client errors are logged as warnings.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: clientMessage(err, status)})
}

// callerID returns the authenticated user. A non-empty claimed user id that differs
// from the token subject is rejected with 403; the response has been written when ok is false.
func callerID(c *gin.Context, claimed string) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	if claimed != "" && claimed != userID {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request names another user", slog.String("claimed_user_id", claimed))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Cannot act on behalf of another user"})
		return "", false
	}
	return userID, true
}

func bindError(c *gin.Context, err error, op string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request for "+op, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
