// Package eventapi is the HTTP client for the remote events API.
package eventapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// ClientParams holds dependencies for the events API client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an EventGateway backed by the events API
func NewClient(params ClientParams) service.EventGateway {
	return newClient(params.Config.EventAPI, &http.Client{}, params.Logger)
}

func newClient(cfg config.EventAPIConfig, httpClient *http.Client, logger *slog.Logger) *client {
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: httpClient,
		logger:     logger,
	}
}

type addRecipeRequest struct {
	Recipe *entity.Recipe `json:"recipe"`
}

// ListEvents fetches every event owned by the credential's principal
func (c *client) ListEvents(ctx context.Context, cred service.Credential) ([]*entity.Event, error) {
	var events []*entity.Event
	if err := c.call(ctx, "listEvents", cred, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}

	out := make([]*entity.Event, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		e.NormalizeRecipes()
		out = append(out, e)
	}

	return out, nil
}

// CreateEvent creates an event
func (c *client) CreateEvent(ctx context.Context, cred service.Credential, draft *entity.EventDraft) (*entity.Event, error) {
	return c.callEvent(ctx, "createEvent", cred, http.MethodPost, "/events", draft)
}

// UpdateEvent updates an event's fields
func (c *client) UpdateEvent(ctx context.Context, cred service.Credential, id entity.ID, patch *entity.EventPatch) (*entity.Event, error) {
	return c.callEvent(ctx, "updateEvent", cred, http.MethodPut, eventPath(id), patch)
}

// DeleteEvent deletes an event
func (c *client) DeleteEvent(ctx context.Context, cred service.Credential, id entity.ID) error {
	return c.call(ctx, "deleteEvent", cred, http.MethodDelete, eventPath(id), nil, nil)
}

// AddRecipe attaches a recipe to an event
func (c *client) AddRecipe(ctx context.Context, cred service.Credential, eventID entity.ID, recipe *entity.Recipe) (*entity.Event, error) {
	return c.callEvent(ctx, "addRecipe", cred, http.MethodPost, eventPath(eventID)+"/recipes",
		addRecipeRequest{Recipe: recipe})
}

// RemoveRecipe detaches a recipe from an event
func (c *client) RemoveRecipe(ctx context.Context, cred service.Credential, eventID entity.ID, recipeID string) (*entity.Event, error) {
	return c.callEvent(ctx, "removeRecipe", cred, http.MethodDelete,
		eventPath(eventID)+"/recipes/"+url.PathEscape(recipeID), nil)
}

func (c *client) callEvent(ctx context.Context, op string, cred service.Credential, method, path string, body any) (*entity.Event, error) {
	var event entity.Event
	if err := c.call(ctx, op, cred, method, path, body, &event); err != nil {
		return nil, err
	}
	if event.ID == "" {
		return nil, domainerrors.NewAPIError(op, http.StatusBadGateway, "response carried no event")
	}
	event.NormalizeRecipes()

	return &event, nil
}

// call performs one request bounded by the configured timeout. Non-2xx
// responses are returned as *domainerrors.APIError.
func (c *client) call(ctx context.Context, op string, cred service.Credential, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", op)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", op)
	}
	req.Header.Set("Authorization", "Bearer "+string(cred))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s: %s %s", op, method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "%s: read response", op)
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Events API call",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.NewAPIError(op, resp.StatusCode, errorMessage(resp.StatusCode, data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		if out != nil {
			return domainerrors.NewAPIError(op, resp.StatusCode, "empty response body")
		}

		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "%s: decode response", op)
	}

	return nil
}

// errorMessage extracts a message from an error body such as
// {"error": "..."} or {"message": "..."}, falling back to the status text.
func errorMessage(status int, data []byte) string {
	var body struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if msg, ok := body.Error.(string); ok && msg != "" {
			return msg
		}
		if body.Message != "" {
			return body.Message
		}
	}

	return http.StatusText(status)
}

func eventPath(id entity.ID) string {
	return "/events/" + url.PathEscape(id.String())
}
