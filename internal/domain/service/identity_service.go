package service

import (
	"context"

	"planner/internal/domain/entity"
)

// Credential is a short-lived bearer token proving the principal to the events API.
type Credential string

// IdentityProvider is the external identity service the planner signs in with.
type IdentityProvider interface {
	// CurrentPrincipal returns the signed-in principal or nil
	CurrentPrincipal() *entity.Principal

	// Subscribe registers fn for sign-in state transitions and returns an unsubscribe func.
	// Transitions are delivered one at a time in emission order.
	Subscribe(fn func(*entity.Principal)) (unsubscribe func())

	// IDToken returns a bearer token for the current principal, refreshing it when forced or stale
	IDToken(ctx context.Context, forceRefresh bool) (string, error)
}

// SessionService is the interactive half of the identity provider
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*entity.Principal, error)
	SignUp(ctx context.Context, email, password, displayName string) (*entity.Principal, error)
	SignOut()
}

// CredentialAccessor is the planner's view of the identity provider.
type CredentialAccessor interface {
	// CurrentPrincipal reflects the last-known sign-in state
	CurrentPrincipal() *entity.Principal

	// OnPrincipalChanged registers fn and immediately invokes it with the current state.
	OnPrincipalChanged(fn func(*entity.Principal)) (unsubscribe func())

	// GetCredential fetches a bearer credential, retrying transient failures
	GetCredential(ctx context.Context, forceRefresh bool) (Credential, error)
}
