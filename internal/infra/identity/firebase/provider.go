// Package firebase signs the planner in against Firebase Authentication
// through its REST API and publishes principal transitions.
package firebase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/errors"

	"go.uber.org/fx"
)

// refreshSkew refreshes cached tokens this long before they expire.
const refreshSkew = time.Minute

// errSessionChanged reports that the session was replaced while a refresh
// was in flight; the caller may retry against the new session.
var errSessionChanged = errors.New("session changed during token refresh")

// Sign-in and sign-up failures the user can act on.
var signInMessages = map[string]string{
	"EMAIL_NOT_FOUND":             "No account found with this email address.",
	"INVALID_PASSWORD":            "Incorrect password. Please try again.",
	"INVALID_LOGIN_CREDENTIALS":   "Incorrect email or password. Please try again.",
	"INVALID_EMAIL":               "Please enter a valid email address.",
	"USER_DISABLED":               "This account has been disabled.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many failed attempts. Please try again later.",
}

var signUpMessages = map[string]string{
	"EMAIL_EXISTS":          "An account with this email already exists.",
	"INVALID_EMAIL":         "Please enter a valid email.",
	"OPERATION_NOT_ALLOWED": "Email/password accounts are not enabled.",
	"WEAK_PASSWORD":         "Password should be at least 6 characters long.",
}

// Refresh failures that end the session.
var sessionEndingCodes = map[string]struct{}{
	"TOKEN_EXPIRED":         {},
	"USER_DISABLED":         {},
	"USER_NOT_FOUND":        {},
	"INVALID_REFRESH_TOKEN": {},
	"INVALID_GRANT_TYPE":    {},
}

type session struct {
	principal    *entity.Principal
	idToken      string
	refreshToken string
	expiresAt    time.Time
}

// ProviderParams holds dependencies for the Provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Verifier TokenVerifier `optional:"true"`
}

// Provider is a Firebase-backed identity provider. It implements
// service.IdentityProvider and service.SessionService.
type Provider struct {
	rest     *restClient
	verifier TokenVerifier
	logger   *slog.Logger
	now      func() time.Time

	// emitMu orders transitions; it is held while subscribers run.
	// mu guards session and subscribers only and is never held during callbacks.
	emitMu  sync.Mutex
	mu      sync.Mutex
	session *session
	subs    map[int]func(*entity.Principal)
	nextSub int
}

// NewProvider creates a Firebase identity provider
func NewProvider(params ProviderParams) *Provider {
	cfg := params.Config.Firebase

	return &Provider{
		rest: &restClient{
			apiKey:          cfg.APIKey,
			identityBaseURL: cfg.IdentityBaseURL,
			tokenBaseURL:    cfg.SecureTokenBaseURL,
			httpClient:      &http.Client{Timeout: cfg.Timeout},
		},
		verifier: params.Verifier,
		logger:   params.Logger,
		now:      time.Now,
		subs:     make(map[int]func(*entity.Principal)),
	}
}

// CurrentPrincipal returns the signed-in principal or nil
func (p *Provider) CurrentPrincipal() *entity.Principal {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil
	}

	return p.session.principal.Clone()
}

// Subscribe registers fn for principal transitions
func (p *Provider) Subscribe(fn func(*entity.Principal)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// SignIn signs in with email and password
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Principal, error) {
	grant, err := p.rest.signInWithPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, userFacing(err, domainerrors.ErrSignInFailed, signInMessages)
	}

	return p.establish(ctx, grant)
}

// SignUp creates an account, sets its display name and signs it in
func (p *Provider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Principal, error) {
	grant, err := p.rest.signUp(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, userFacing(err, domainerrors.ErrSignUpFailed, signUpMessages)
	}

	if name := strings.TrimSpace(displayName); name != "" {
		updated, err := p.rest.updateDisplayName(ctx, grant.IDToken, name)
		if err != nil {
			// The account exists at this point; keep the session without a name.
			p.logger.Warn("Failed to set display name", slog.Any("error", err))
		} else {
			if updated.RefreshToken == "" {
				updated.RefreshToken = grant.RefreshToken
			}
			grant = updated
		}
	}

	return p.establish(ctx, grant)
}

// SignOut ends the session
func (p *Provider) SignOut() {
	p.transition(nil)
	p.logger.Info("Signed out")
}

// IDToken returns the session's ID token, refreshing it when forced or close to expiry
func (p *Provider) IDToken(ctx context.Context, forceRefresh bool) (string, error) {
	p.mu.Lock()
	current := p.session
	p.mu.Unlock()

	if current == nil {
		return "", domainerrors.ErrNotAuthenticated
	}
	if !forceRefresh && p.now().Add(refreshSkew).Before(current.expiresAt) {
		return current.idToken, nil
	}

	grant, err := p.rest.refresh(ctx, current.refreshToken)
	if err != nil {
		var restErr *restError
		if errors.As(err, &restErr) {
			if _, ends := sessionEndingCodes[restErr.Code]; ends {
				p.logger.Warn("Session rejected by identity provider, signing out",
					slog.String("code", restErr.Code),
					slog.String("principal", current.principal.ShortID()),
				)
				p.transitionFrom(current, nil)

				return "", errors.Join(domainerrors.ErrNotAuthenticated, err)
			}
		}

		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session != current {
		return "", errSessionChanged
	}
	p.session = &session{
		principal:    current.principal,
		idToken:      grant.IDToken,
		refreshToken: firstNonEmpty(grant.RefreshToken, current.refreshToken),
		expiresAt:    p.now().Add(grant.ExpiresIn),
	}

	return grant.IDToken, nil
}

func (p *Provider) establish(ctx context.Context, grant *tokenGrant) (*entity.Principal, error) {
	principal, err := principalFromToken(ctx, p.verifier, grant.IDToken)
	if err != nil {
		return nil, err
	}
	if grant.UserID != "" && grant.UserID != principal.ID {
		return nil, errors.Errorf("token subject %s does not match account %s", principal.ID, grant.UserID)
	}

	p.transition(&session{
		principal:    principal,
		idToken:      grant.IDToken,
		refreshToken: grant.RefreshToken,
		expiresAt:    p.now().Add(grant.ExpiresIn),
	})

	p.logger.Info("Signed in", slog.String("principal", principal.ShortID()))

	return principal.Clone(), nil
}

// transition replaces the session and notifies subscribers in order.
func (p *Provider) transition(next *session) {
	p.emitMu.Lock()
	defer p.emitMu.Unlock()

	p.mu.Lock()
	p.session = next
	subs := p.snapshotSubscribers()
	p.mu.Unlock()

	notify(subs, next)
}

// transitionFrom is transition guarded by the session the caller observed.
func (p *Provider) transitionFrom(expected, next *session) {
	p.emitMu.Lock()
	defer p.emitMu.Unlock()

	p.mu.Lock()
	if p.session != expected {
		p.mu.Unlock()

		return
	}
	p.session = next
	subs := p.snapshotSubscribers()
	p.mu.Unlock()

	notify(subs, next)
}

func (p *Provider) snapshotSubscribers() []func(*entity.Principal) {
	subs := make([]func(*entity.Principal), 0, len(p.subs))
	for i := 0; i < p.nextSub; i++ {
		if fn, ok := p.subs[i]; ok {
			subs = append(subs, fn)
		}
	}

	return subs
}

func notify(subs []func(*entity.Principal), next *session) {
	var principal *entity.Principal
	if next != nil {
		principal = next.principal
	}
	for _, fn := range subs {
		fn(principal.Clone())
	}
}

// userFacing turns a provider rejection into an AppError with the matching
// message; transport failures are returned unchanged.
func userFacing(err error, fallback *domainerrors.BaseError, messages map[string]string) error {
	var restErr *restError
	if !errors.As(err, &restErr) {
		return err
	}

	if msg, ok := messages[restErr.Code]; ok {
		return errors.Join(fallback.WithDetails(msg), err)
	}

	return errors.Join(fallback.WithDetails(restErr.Code), err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
