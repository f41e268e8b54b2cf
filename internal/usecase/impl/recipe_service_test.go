package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	mockService "planner/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRecipeService(t *testing.T) (*recipeService, *mockService.MockRecipeCatalog) {
	t.Helper()

	catalog := mockService.NewMockRecipeCatalog(t)
	cfg := &config.Config{}
	cfg.Catalog.RandomSampleSize = 12

	srv := NewRecipeService(RecipeServiceParams{
		Catalog: catalog,
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*recipeService)

	return srv, catalog
}

func TestRecipeService_RandomUsesConfiguredSize(t *testing.T) {
	srv, catalog := newTestRecipeService(t)
	ctx := context.Background()

	recipes := []*entity.Recipe{{ID: "1", Name: "Soup"}}
	catalog.EXPECT().RandomSample(ctx, 12).Return(recipes, nil)

	out := srv.Random(ctx, 0)
	assert.Equal(t, recipes, out.Recipes)
	assert.Empty(t, out.Notice)
	assert.False(t, out.NoMatches)
}

func TestRecipeService_CatalogFailureDegrades(t *testing.T) {
	srv, catalog := newTestRecipeService(t)
	ctx := context.Background()

	catalog.EXPECT().SearchByKeyword(ctx, "soup").Return(nil, errors.Wrap(domainerrors.ErrCatalogUnavailable, "search"))

	out := srv.Search(ctx, "soup")
	require.NotNil(t, out)
	assert.NotNil(t, out.Recipes)
	assert.Empty(t, out.Recipes)
	assert.False(t, out.NoMatches)
	assert.Equal(t, noticeCatalogFailed, out.Notice)
}

func TestRecipeService_SearchNoMatches(t *testing.T) {
	srv, catalog := newTestRecipeService(t)
	ctx := context.Background()

	catalog.EXPECT().SearchByKeyword(ctx, "zzz").Return(&service.CatalogResult{Recipes: []*entity.Recipe{}, NoMatches: true}, nil)

	out := srv.Search(ctx, "zzz")
	assert.True(t, out.NoMatches)
	assert.Equal(t, noticeNoMatches, out.Notice)
}

func TestRecipeService_BlankSearchIsRandom(t *testing.T) {
	srv, catalog := newTestRecipeService(t)
	ctx := context.Background()

	catalog.EXPECT().RandomSample(ctx, 12).Return([]*entity.Recipe{}, nil)

	out := srv.Search(ctx, "  ")
	assert.Empty(t, out.Recipes)
	assert.Empty(t, out.Notice)
}

func TestRecipeService_Resolve(t *testing.T) {
	srv, catalog := newTestRecipeService(t)
	ctx := context.Background()

	complete := &entity.Recipe{ID: "52772", Name: "Teriyaki Chicken Casserole"}
	got, err := srv.Resolve(ctx, complete)
	require.NoError(t, err)
	assert.Same(t, complete, got)

	catalog.EXPECT().LookupByID(mock.Anything, "52772").Return(complete, nil).Once()
	got, err = srv.Resolve(ctx, &entity.Recipe{ID: "52772"})
	require.NoError(t, err)
	assert.Equal(t, "Teriyaki Chicken Casserole", got.Name)

	catalog.EXPECT().LookupByID(mock.Anything, "0").Return(nil, nil).Once()
	_, err = srv.Resolve(ctx, &entity.Recipe{ID: "0"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Resolve(ctx, &entity.Recipe{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
