package impl

import (
	"context"
	"log/slog"
	"strings"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

// Notices shown alongside an empty recipe list.
const (
	noticeCatalogFailed = "Error loading recipes. Please try again."
	noticeNoMatches     = "No recipes found. Try a different search term."
)

// RecipeServiceParams holds dependencies for the recipe service, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	Catalog service.RecipeCatalog
	Config  *config.Config
	Logger  *slog.Logger
}

type recipeService struct {
	catalog    service.RecipeCatalog
	sampleSize int
	logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		catalog:    params.Catalog,
		sampleSize: params.Config.Catalog.RandomSampleSize,
		logger:     params.Logger,
	}
}

// Random returns a random selection of recipes.
func (srv *recipeService) Random(ctx context.Context, count int) *usecase.DiscoverOutput {
	if count <= 0 {
		count = srv.sampleSize
	}

	recipes, err := srv.catalog.RandomSample(ctx, count)
	if err != nil {
		return srv.degraded(ctx, err)
	}

	return &usecase.DiscoverOutput{Recipes: recipes}
}

// Search finds recipes by keyword.
func (srv *recipeService) Search(ctx context.Context, keyword string) *usecase.DiscoverOutput {
	if strings.TrimSpace(keyword) == "" {
		return srv.Random(ctx, 0)
	}

	result, err := srv.catalog.SearchByKeyword(ctx, keyword)
	if err != nil {
		return srv.degraded(ctx, err)
	}

	out := &usecase.DiscoverOutput{Recipes: result.Recipes, NoMatches: result.NoMatches}
	if result.NoMatches {
		out.Notice = noticeNoMatches
	}

	return out
}

// Resolve looks up a recipe given only by id; complete recipes are returned as-is.
func (srv *recipeService) Resolve(ctx context.Context, recipe *entity.Recipe) (*entity.Recipe, error) {
	if recipe == nil || strings.TrimSpace(recipe.ID) == "" {
		return nil, domainerrors.NewValidationError("recipe id is required")
	}
	if recipe.Name != "" {
		return recipe, nil
	}

	found, err := srv.catalog.LookupByID(ctx, recipe.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup recipe %s", recipe.ID)
	}
	if found == nil {
		return nil, domainerrors.NewValidationError("unknown recipe " + recipe.ID)
	}

	return found, nil
}

func (srv *recipeService) degraded(ctx context.Context, err error) *usecase.DiscoverOutput {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Recipe catalog request failed", slog.Any("error", err))

	return &usecase.DiscoverOutput{
		Recipes: []*entity.Recipe{},
		Notice:  noticeCatalogFailed,
	}
}
