package firebase

import (
	"context"

	"planner/config"
	"planner/internal/domain/entity"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// TokenVerifier verifies ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// NewAdminVerifier builds a verifier from service-account credentials.
// It returns nil when no credentials are configured.
func NewAdminVerifier(ctx context.Context, cfg config.FirebaseConfig) (TokenVerifier, error) {
	if cfg.CredentialsPath == "" {
		return nil, nil
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID},
		option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// principalFromToken reads the principal out of an ID token, verifying it
// first when a verifier is available.
func principalFromToken(ctx context.Context, verifier TokenVerifier, idToken string) (*entity.Principal, error) {
	if verifier != nil {
		token, err := verifier.VerifyIDToken(ctx, idToken)
		if err != nil {
			return nil, errors.Wrap(err, "token verification failed")
		}

		return principalFromClaims(token.UID, token.Claims), nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	uid, _ := claims["user_id"].(string)
	if uid == "" {
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		return nil, errors.New("ID token carries no subject")
	}

	return principalFromClaims(uid, claims), nil
}

func principalFromClaims(uid string, claims map[string]any) *entity.Principal {
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	verified, _ := claims["email_verified"].(bool)

	return &entity.Principal{
		ID:            uid,
		DisplayName:   name,
		Email:         email,
		EmailVerified: verified,
	}
}
