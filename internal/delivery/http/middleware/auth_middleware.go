package middleware

import (
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes that need a signed-in principal.
type AuthMiddleware struct {
	accessor service.CredentialAccessor
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accessor service.CredentialAccessor, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		accessor: accessor,
		logger:   logger,
	}
}

// RequirePrincipal rejects the request when nobody is signed in. Otherwise the
// request logger is tagged with the principal.
func (m *AuthMiddleware) RequirePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := m.accessor.CurrentPrincipal()
		if principal == nil {
			return domainerrors.ErrNotAuthenticated
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
