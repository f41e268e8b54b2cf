package errors

import (
	"fmt"
	"net/http"

	"planner/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "EVENT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
	Kind    Kind   `json:"kind,omitempty"`    // Error class the UI keys its message off
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so values derived
// through WithDetails still compare equal to the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrCredentialUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CREDENTIAL_UNAVAILABLE",
		"Could not verify your session, please try again",
		"",
	)

	ErrPrincipalChanged = NewBaseError(
		http.StatusConflict,
		"PRINCIPAL_CHANGED",
		"The signed-in account changed while the request was running",
		"",
	)

	ErrSignInFailed = NewBaseError(
		http.StatusUnauthorized,
		"SIGN_IN_FAILED",
		"An error occurred during sign-in. Please try again.",
		"",
	)

	ErrSignUpFailed = NewBaseError(
		http.StatusBadRequest,
		"SIGN_UP_FAILED",
		"An error occurred during sign-up. Please try again.",
		"",
	)

	// Event-related errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"This event no longer exists, refresh your view",
		"",
	)

	ErrRecipeAlreadyAdded = NewBaseError(
		http.StatusConflict,
		"RECIPE_ALREADY_ADDED",
		"This recipe is already added to this event",
		"",
	)

	ErrRecipeNotInEvent = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_IN_EVENT",
		"This recipe is not part of the event",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some of the provided information is invalid",
		"",
	)

	// Collaborator errors
	ErrCatalogUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CATALOG_UNAVAILABLE",
		"Error loading recipes. Please try again.",
		"",
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"This photo is not available",
		"",
	)

	ErrPhotoStoreFailed = NewBaseError(
		http.StatusBadGateway,
		"PHOTO_STORE_FAILED",
		"Photo upload failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong, please try again",
		"",
	)
)

// NewValidationError returns ErrValidationFailed carrying a corrective reason.
func NewValidationError(reason string) *BaseError {
	return ErrValidationFailed.WithDetails(reason)
}

// APIError is a rejection from the remote events API.
type APIError struct {
	Status    int
	Reason    string // Message from the response body, or the status text
	Operation string
}

// NewAPIError creates an APIError for the given gateway operation
func NewAPIError(operation string, status int, message string) *APIError {
	return &APIError{
		Status:    status,
		Reason:    message,
		Operation: operation,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: events API returned %d: %s", e.Operation, e.Status, e.Reason)
}

// HTTPCode returns the HTTP status code surfaced to the presentation layer
func (e *APIError) HTTPCode() int {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict:
		return e.Status
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	switch e.Status {
	case http.StatusBadRequest:
		return "API_BAD_REQUEST"
	case http.StatusUnauthorized:
		return "API_UNAUTHORIZED"
	case http.StatusNotFound:
		return "API_NOT_FOUND"
	case http.StatusConflict:
		return "API_CONFLICT"
	default:
		return "API_ERROR"
	}
}

// Message returns the user-friendly error message
func (e *APIError) Message() string {
	switch e.Status {
	case http.StatusBadRequest:
		return "The request was rejected, check the submitted fields"
	case http.StatusUnauthorized:
		return ErrNotAuthenticated.Message()
	case http.StatusNotFound:
		return ErrEventNotFound.Message()
	case http.StatusConflict:
		return "The request conflicts with the current state"
	default:
		return "The events service is unavailable, please try again"
	}
}

// Details returns detailed error information
func (e *APIError) Details() string {
	return e.Reason
}

// IsAPIStatus reports whether err carries an APIError with the given status.
func IsAPIStatus(err error, status int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Status == status
}
