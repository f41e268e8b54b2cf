package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// DiscoverOutput is a page of catalog recipes. Catalog failures never reach
// the caller as errors: they produce an empty list and a Notice.
type DiscoverOutput struct {
	Recipes   []*entity.Recipe
	NoMatches bool
	Notice    string
}

// RecipeUsecase serves recipe browsing.
type RecipeUsecase interface {
	// Random returns a random selection; count <= 0 uses the configured size
	Random(ctx context.Context, count int) *DiscoverOutput

	// Search finds recipes by keyword; a blank keyword behaves like Random
	Search(ctx context.Context, keyword string) *DiscoverOutput

	// Resolve completes a recipe given only by its catalog id
	Resolve(ctx context.Context, recipe *entity.Recipe) (*entity.Recipe, error)
}
