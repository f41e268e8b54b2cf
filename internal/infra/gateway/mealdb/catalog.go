// Package mealdb reads recipes from a TheMealDB-compatible catalog.
package mealdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const maxResponseBytes = 2 << 20

// CatalogParams holds dependencies for the recipe catalog, injected by Fx.
type CatalogParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type catalog struct {
	baseURL     string
	timeout     time.Duration
	sampleSize  int
	concurrency int
	httpClient  *http.Client
	logger      *slog.Logger
}

// mealsResponse is the catalog envelope; Meals is null when nothing matched.
type mealsResponse struct {
	Meals []*entity.Recipe `json:"meals"`
}

// NewCatalog creates a RecipeCatalog
func NewCatalog(params CatalogParams) service.RecipeCatalog {
	return newCatalog(params.Config.Catalog, &http.Client{}, params.Logger)
}

func newCatalog(cfg config.CatalogConfig, httpClient *http.Client, logger *slog.Logger) *catalog {
	return &catalog{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		timeout:     cfg.Timeout,
		sampleSize:  cfg.RandomSampleSize,
		concurrency: cfg.Concurrency,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// RandomSample issues count random lookups concurrently. Failed lookups are
// dropped; duplicates keep their first position in call order.
func (c *catalog) RandomSample(ctx context.Context, count int) ([]*entity.Recipe, error) {
	if count <= 0 {
		return []*entity.Recipe{}, nil
	}

	results := make([]*entity.Recipe, count)
	failures := make([]error, count)

	g, gctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i := range count {
		g.Go(func() error {
			resp, err := c.get(gctx, "/random.php", nil)
			if err != nil {
				failures[i] = err

				return nil
			}
			if len(resp.Meals) > 0 {
				results[i] = resp.Meals[0]
			}

			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]*entity.Recipe, 0, count)
	seen := make(map[string]struct{}, count)
	failed := 0
	var lastErr error
	for i, r := range results {
		if failures[i] != nil {
			failed++
			lastErr = failures[i]

			continue
		}
		if r == nil || r.ID == "" {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		recipes = append(recipes, r)
	}

	if failed > 0 {
		c.logger.Warn("Random recipe lookups failed",
			slog.Int("failed", failed),
			slog.Int("requested", count),
			slog.Any("error", lastErr),
		)
	}
	if failed == count {
		return nil, errors.Join(domainerrors.ErrCatalogUnavailable.WithDetails("all random lookups failed"), lastErr)
	}

	return recipes, nil
}

// SearchByKeyword searches recipes by name
func (c *catalog) SearchByKeyword(ctx context.Context, keyword string) (*service.CatalogResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		recipes, err := c.RandomSample(ctx, c.sampleSize)
		if err != nil {
			return nil, err
		}

		return &service.CatalogResult{Recipes: recipes}, nil
	}

	resp, err := c.get(ctx, "/search.php", url.Values{"s": {keyword}})
	if err != nil {
		return nil, errors.Join(domainerrors.ErrCatalogUnavailable, err)
	}

	recipes := compact(resp.Meals)

	return &service.CatalogResult{
		Recipes:   recipes,
		NoMatches: len(recipes) == 0,
	}, nil
}

// LookupByID fetches a single recipe
func (c *catalog) LookupByID(ctx context.Context, id string) (*entity.Recipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	resp, err := c.get(ctx, "/lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, errors.Join(domainerrors.ErrCatalogUnavailable, err)
	}

	recipes := compact(resp.Meals)
	if len(recipes) == 0 {
		return nil, nil
	}

	return recipes[0], nil
}

func (c *catalog) get(ctx context.Context, path string, query url.Values) (*mealsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("catalog %s returned status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s: read body", path)
	}

	var out mealsResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, "catalog %s: malformed response", path)
	}

	return &out, nil
}

func compact(recipes []*entity.Recipe) []*entity.Recipe {
	out := make([]*entity.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r != nil && r.ID != "" {
			out = append(out, r)
		}
	}

	return out
}
