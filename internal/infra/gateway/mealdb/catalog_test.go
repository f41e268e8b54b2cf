package mealdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"planner/config"
	domainerrors "planner/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) *catalog {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newCatalog(config.CatalogConfig{
		BaseURL:          srv.URL,
		Timeout:          2 * time.Second,
		RandomSampleSize: 4,
		Concurrency:      2,
	}, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCatalog_RandomSampleDedupsAndDropsFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random.php", r.URL.Path)

		n := calls.Add(1)
		switch n % 3 {
		case 0:
			w.WriteHeader(http.StatusInternalServerError)
		case 1:
			_, _ = io.WriteString(w, `{"meals":[{"idMeal":"1","strMeal":"Soup"}]}`)
		default:
			_, _ = fmt.Fprintf(w, `{"meals":[{"idMeal":"%d","strMeal":"Dish %d"}]}`, 100+n, n)
		}
	})

	recipes, err := c.RandomSample(context.Background(), 6)
	require.NoError(t, err)
	assert.EqualValues(t, 6, calls.Load())

	// Two calls fail, two return the same recipe, two are distinct.
	require.Len(t, recipes, 3)
	ids := map[string]bool{}
	for _, r := range recipes {
		assert.False(t, ids[r.ID], "duplicate %s", r.ID)
		ids[r.ID] = true
	}
	assert.True(t, ids["1"])
}

func TestCatalog_RandomSampleAllFailed(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.RandomSample(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	assert.Equal(t, domainerrors.KindTransient, domainerrors.Classify(err))
}

func TestCatalog_SearchByKeyword(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)

		switch r.URL.Query().Get("s") {
		case "chicken":
			_, _ = io.WriteString(w, `{"meals":[{
				"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strCategory":"Chicken",
				"strArea":"Japanese","strTags":"Meat,Casserole","strYoutube":"",
				"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
				"strIngredient2":"water","strMeasure2":" ",
				"strIngredient3":"","strMeasure3":"",
				"strIngredient4":null,"strMeasure4":null
			}]}`)
		default:
			_, _ = io.WriteString(w, `{"meals":null}`)
		}
	})

	result, err := c.SearchByKeyword(context.Background(), "  chicken ")
	require.NoError(t, err)
	assert.False(t, result.NoMatches)
	require.Len(t, result.Recipes, 1)

	recipe := result.Recipes[0]
	assert.Equal(t, "52772", recipe.ID)
	assert.Equal(t, "Japanese", recipe.Area)
	assert.Equal(t, []string{"Meat", "Casserole"}, recipe.Tags)
	assert.Equal(t, []string{"3/4 cup soy sauce", "water"}, recipe.Ingredients)
	assert.Empty(t, recipe.VideoURL)

	result, err = c.SearchByKeyword(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.True(t, result.NoMatches)
	assert.NotNil(t, result.Recipes)
	assert.Empty(t, result.Recipes)
}

func TestCatalog_BlankKeywordUsesRandomSample(t *testing.T) {
	var calls atomic.Int32
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random.php", r.URL.Path)
		n := calls.Add(1)
		_, _ = fmt.Fprintf(w, `{"meals":[{"idMeal":"%d","strMeal":"Dish"}]}`, n)
	})

	result, err := c.SearchByKeyword(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, result.NoMatches)
	assert.Len(t, result.Recipes, 4)
	assert.EqualValues(t, 4, calls.Load())
}

func TestCatalog_SearchFailure(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	_, err := c.SearchByKeyword(context.Background(), "soup")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
}

func TestCatalog_LookupByID(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		if r.URL.Query().Get("i") == "52772" {
			_, _ = io.WriteString(w, `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strArea":"Unknown"}]}`)

			return
		}
		_, _ = io.WriteString(w, `{"meals":null}`)
	})

	recipe, err := c.LookupByID(context.Background(), "52772")
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "Teriyaki Chicken Casserole", recipe.Name)
	assert.Empty(t, recipe.Area)

	recipe, err = c.LookupByID(context.Background(), "0")
	require.NoError(t, err)
	assert.Nil(t, recipe)
}
