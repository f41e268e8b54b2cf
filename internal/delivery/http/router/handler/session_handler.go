// Package handler contains the HTTP handlers for the planner.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves sign-in, sign-up and sign-out.
type SessionHandler struct {
	sessions service.SessionService
	accessor service.CredentialAccessor
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessions service.SessionService, accessor service.CredentialAccessor, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		accessor: accessor,
		logger:   logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	DisplayName     string `json:"displayName" validate:"max=100"`
}

// PrincipalResponse is the public view of the signed-in account.
type PrincipalResponse struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name,omitempty"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// SessionResponse reports whether somebody is signed in.
type SessionResponse struct {
	SignedIn  bool               `json:"signed_in"`
	Principal *PrincipalResponse `json:"principal,omitempty"`
}

func toPrincipalResponse(p *entity.Principal) *PrincipalResponse {
	if p == nil {
		return nil
	}

	return &PrincipalResponse{
		ID:            p.ID,
		DisplayName:   p.DisplayName,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
	}
}

func sessionOf(p *entity.Principal) SessionResponse {
	return SessionResponse{SignedIn: p != nil, Principal: toPrincipalResponse(p)}
}

// Current returns the signed-in principal, if any.
func (h *SessionHandler) Current(c echo.Context) error {
	return response.Success(c, http.StatusOK, sessionOf(h.accessor.CurrentPrincipal()), "")
}

// Login handles the sign-in request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	input.Email = strings.TrimSpace(input.Email)
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	principal, err := h.sessions.SignIn(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionOf(principal), "Signed in")
}

// SignUp handles the account creation request.
func (h *SessionHandler) SignUp(c echo.Context) error {
	var input signUpRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid sign-up input")
	}
	input.Email = strings.TrimSpace(input.Email)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	principal, err := h.sessions.SignUp(c.Request().Context(), input.Email, input.Password, input.DisplayName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sessionOf(principal), "Account created")
}

// Logout handles the sign-out request.
func (h *SessionHandler) Logout(c echo.Context) error {
	if p := h.accessor.CurrentPrincipal(); p != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Signing out", slog.String("principal", p.ShortID()))
	}
	h.sessions.SignOut()

	return response.Success(c, http.StatusOK, sessionOf(nil), "Signed out")
}
