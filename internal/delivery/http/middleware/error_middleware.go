package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/delivery/http/response"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPCode()
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		}

		_ = response.Error(c, status, &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
			Kind:    domainerrors.Classify(err),
		}, domainerrors.UserMessage(err))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, &domainerrors.ErrorInfo{Code: "HTTP_ERROR"}, message)

		return
	}

	// Timeouts and other transport failures without an AppError.
	if kind := domainerrors.Classify(err); kind == domainerrors.KindTransient {
		logger.Warn("Request failed", slog.Any("error", err))

		_ = response.Error(c, http.StatusGatewayTimeout, &domainerrors.ErrorInfo{
			Code: "UPSTREAM_TIMEOUT",
			Kind: kind,
		}, domainerrors.UserMessage(err))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, &domainerrors.ErrorInfo{
		Code: domainerrors.ErrInternalError.ErrorCode(),
		Kind: domainerrors.KindUnknown,
	}, domainerrors.ErrInternalError.Message())
}
