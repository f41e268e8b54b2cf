package service

import (
	"context"

	"planner/internal/domain/entity"
)

// CatalogResult is a keyword search outcome. NoMatches distinguishes a
// successful empty search from a failed request.
type CatalogResult struct {
	Recipes   []*entity.Recipe
	NoMatches bool
}

// RecipeCatalog is the read-only third-party recipe catalog.
type RecipeCatalog interface {
	// RandomSample returns up to count distinct random recipes
	RandomSample(ctx context.Context, count int) ([]*entity.Recipe, error)

	// SearchByKeyword searches by name; a blank keyword returns a random sample
	SearchByKeyword(ctx context.Context, keyword string) (*CatalogResult, error)

	// LookupByID fetches one recipe; it returns nil without error when the id is unknown
	LookupByID(ctx context.Context, id string) (*entity.Recipe, error)
}
