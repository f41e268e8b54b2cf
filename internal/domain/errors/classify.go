package errors

import (
	"context"
	"net/http"

	"planner/internal/errors"
)

// Kind groups errors by what the user can do about them.
type Kind string

const (
	KindAuthRequired Kind = "auth_required"
	KindTransient    Kind = "transient"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindUnknown      Kind = "unknown"
)

// Classify maps err onto the user-facing error kinds.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrSignInFailed):
		return KindAuthRequired
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrSignUpFailed):
		return KindValidation
	case errors.Is(err, ErrRecipeAlreadyAdded), errors.Is(err, ErrPrincipalChanged):
		return KindConflict
	case errors.IsAny(err, ErrEventNotFound, ErrRecipeNotInEvent, ErrPhotoNotFound):
		return KindNotFound
	case errors.IsAny(err, ErrCredentialUnavailable, ErrCatalogUnavailable, ErrPhotoStoreFailed,
		context.DeadlineExceeded):
		return KindTransient
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			return KindAuthRequired
		case http.StatusNotFound:
			return KindNotFound
		case http.StatusConflict:
			return KindConflict
		case http.StatusBadRequest:
			return KindValidation
		default:
			return KindTransient
		}
	}

	return KindUnknown
}

// UserMessage returns a human-readable message for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		if details := appErr.Details(); details != "" && showsDetails(err) {
			return details
		}

		return appErr.Message()
	}

	if Classify(err) == KindTransient {
		return "The request timed out, please try again"
	}

	return ErrInternalError.Message()
}

// showsDetails reports whether the details of err are written for the user.
func showsDetails(err error) bool {
	return errors.IsAny(err, ErrValidationFailed, ErrSignInFailed, ErrSignUpFailed)
}
