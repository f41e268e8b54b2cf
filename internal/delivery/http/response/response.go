// Package response renders the planner's JSON envelope.
package response

import (
	"net/http"

	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`    // HTTP status code
	Message string                  `json:"message"` // User-friendly message
	Data    any                     `json:"data,omitempty"`
	Warning string                  `json:"warning,omitempty"` // Set when the request succeeded only in part
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo               `json:"meta,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// PartialSuccess reports a completed request with a warning about the part
// that failed, such as an event saved without its photo.
func PartialSuccess(c echo.Context, statusCode int, data any, message, warning string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Warning: warning,
		Meta:    meta(c),
	})
}

// Error error response. Details are withheld for 5xx responses.
func Error(c echo.Context, statusCode int, info *domainerrors.ErrorInfo, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError && info != nil {
		info.Details = ""
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error:   info,
		Meta:    meta(c),
	})
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, &domainerrors.ErrorInfo{
		Code: "INVALID_INPUT",
		Kind: domainerrors.KindValidation,
	}, message)
}
