// Package credential adapts the identity provider into the planner's
// CredentialAccessor: ordered principal notifications and bearer tokens
// fetched with a bounded retry.
package credential

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/util"

	"go.uber.org/fx"
)

// AccessorParams holds dependencies for the accessor, injected by Fx.
type AccessorParams struct {
	fx.In

	Provider service.IdentityProvider
	Config   *config.Config
	Logger   *slog.Logger
}

type accessor struct {
	provider    service.IdentityProvider
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      *slog.Logger

	// dispatchMu serialises the initial notification of a new listener with
	// provider notifications so a listener never sees state go backwards.
	dispatchMu sync.Mutex
}

// NewAccessor creates a CredentialAccessor over the identity provider
func NewAccessor(params AccessorParams) service.CredentialAccessor {
	return newAccessor(params.Provider, params.Config.Credential, params.Logger, util.SleepContext)
}

func newAccessor(
	provider service.IdentityProvider,
	cfg config.CredentialConfig,
	logger *slog.Logger,
	sleep func(ctx context.Context, d time.Duration) error,
) *accessor {
	return &accessor{
		provider:    provider,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		sleep:       sleep,
		logger:      logger,
	}
}

// CurrentPrincipal returns the last-known principal
func (a *accessor) CurrentPrincipal() *entity.Principal {
	return a.provider.CurrentPrincipal().Clone()
}

// OnPrincipalChanged registers fn and invokes it once with the current state
// before returning.
func (a *accessor) OnPrincipalChanged(fn func(*entity.Principal)) func() {
	a.dispatchMu.Lock()
	defer a.dispatchMu.Unlock()

	unsubscribe := a.provider.Subscribe(func(p *entity.Principal) {
		a.dispatchMu.Lock()
		defer a.dispatchMu.Unlock()

		fn(p.Clone())
	})

	fn(a.provider.CurrentPrincipal().Clone())

	return unsubscribe
}

// GetCredential returns a bearer credential for the current principal.
// ErrNotAuthenticated is returned immediately; any other failure is retried
// and reported as ErrCredentialUnavailable once the attempts run out.
func (a *accessor) GetCredential(ctx context.Context, forceRefresh bool) (service.Credential, error) {
	if a.provider.CurrentPrincipal() == nil {
		return "", domainerrors.ErrNotAuthenticated
	}

	policy := util.RetryPolicy{
		MaxAttempts: a.maxAttempts,
		Delay:       a.backoff,
		Sleep:       a.sleep,
		Retryable: func(err error) bool {
			return !errors.Is(err, domainerrors.ErrNotAuthenticated)
		},
	}

	attempt := 0
	result := util.Retry(ctx, policy, func(ctx context.Context) (string, error) {
		attempt++
		token, err := a.provider.IDToken(ctx, forceRefresh)
		if err != nil {
			a.logger.Warn("Token retrieval failed",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", a.maxAttempts),
				slog.Any("error", err),
			)

			return "", err
		}
		if token == "" {
			return "", errors.New("identity provider returned an empty token")
		}

		return token, nil
	})

	switch result.Outcome {
	case util.RetrySucceeded:
		return service.Credential(result.Value), nil
	case util.RetryAborted:
		if errors.Is(result.Err, domainerrors.ErrNotAuthenticated) {
			return "", result.Err
		}
	}

	return "", errors.Join(
		domainerrors.ErrCredentialUnavailable.WithDetails(
			fmt.Sprintf("%s after %d attempts", result.Outcome, result.Attempts)),
		result.Err,
	)
}
