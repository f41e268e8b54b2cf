package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// tokenGrant is the token material returned by the sign-in, sign-up and
// refresh endpoints, normalised across their differing field names.
type tokenGrant struct {
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
	UserID       string
}

// restError is an error reported by the Identity Toolkit or Secure Token API.
type restError struct {
	Status int
	Code   string // e.g. EMAIL_NOT_FOUND, TOKEN_EXPIRED
	Detail string
}

func (e *restError) Error() string {
	if e.Detail != "" {
		return "firebase auth: " + e.Code + ": " + e.Detail
	}

	return "firebase auth: " + e.Code
}

type restClient struct {
	apiKey          string
	identityBaseURL string
	tokenBaseURL    string
	httpClient      *http.Client
}

type accountResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *restClient) signInWithPassword(ctx context.Context, email, password string) (*tokenGrant, error) {
	return c.account(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

func (c *restClient) signUp(ctx context.Context, email, password string) (*tokenGrant, error) {
	return c.account(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

func (c *restClient) updateDisplayName(ctx context.Context, idToken, displayName string) (*tokenGrant, error) {
	return c.account(ctx, "accounts:update", map[string]any{
		"idToken":           idToken,
		"displayName":       displayName,
		"returnSecureToken": true,
	})
}

func (c *restClient) account(ctx context.Context, method string, payload map[string]any) (*tokenGrant, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := strings.TrimRight(c.identityBaseURL, "/") + "/" + method + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp accountResponse
	if err := c.do(req, &resp); err != nil {
		return nil, errors.Wrap(err, method)
	}

	return &tokenGrant{
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    parseExpiresIn(resp.ExpiresIn),
		UserID:       resp.LocalID,
	}, nil
}

func (c *restClient) refresh(ctx context.Context, refreshToken string) (*tokenGrant, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := strings.TrimRight(c.tokenBaseURL, "/") + "/token?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp refreshResponse
	if err := c.do(req, &resp); err != nil {
		return nil, errors.Wrap(err, "token refresh")
	}

	return &tokenGrant{
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    parseExpiresIn(resp.ExpiresIn),
		UserID:       resp.UserID,
	}, nil
}

func (c *restClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeRESTError(resp.StatusCode, data)
	}

	return errors.WithStack(json.Unmarshal(data, out))
}

// decodeRESTError splits messages such as "WEAK_PASSWORD : Password should be
// at least 6 characters" into code and detail.
func decodeRESTError(status int, data []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error.Message == "" {
		return &restError{Status: status, Code: http.StatusText(status)}
	}

	code, detail, _ := strings.Cut(envelope.Error.Message, ":")

	return &restError{
		Status: status,
		Code:   strings.TrimSpace(code),
		Detail: strings.TrimSpace(detail),
	}
}

func parseExpiresIn(raw string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || seconds <= 0 {
		return time.Hour
	}

	return time.Duration(seconds) * time.Second
}
