package handler

import (
	"net/http"
	"strconv"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
)

// maxRandomCount caps the random sample a single request can ask for.
const maxRandomCount = 50

// RecipeHandler serves catalog browsing.
type RecipeHandler struct {
	recipes usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(recipes usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RecipeListResponse is a page of catalog recipes.
type RecipeListResponse struct {
	Recipes   []*entity.Recipe `json:"recipes"`
	NoMatches bool             `json:"no_matches"`
	Notice    string           `json:"notice,omitempty"`
}

func toRecipeList(out *usecase.DiscoverOutput) RecipeListResponse {
	recipes := out.Recipes
	if recipes == nil {
		recipes = []*entity.Recipe{}
	}

	return RecipeListResponse{Recipes: recipes, NoMatches: out.NoMatches, Notice: out.Notice}
}

// Random returns a random selection of recipes.
func (h *RecipeHandler) Random(c echo.Context) error {
	count := 0
	if raw := c.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRandomCount {
			return domainerrors.NewValidationError("count must be a number between 1 and " + strconv.Itoa(maxRandomCount))
		}
		count = n
	}

	out := h.recipes.Random(c.Request().Context(), count)

	return response.Success(c, http.StatusOK, toRecipeList(out), out.Notice)
}

// Search finds recipes by keyword.
func (h *RecipeHandler) Search(c echo.Context) error {
	out := h.recipes.Search(c.Request().Context(), c.QueryParam("q"))

	return response.Success(c, http.StatusOK, toRecipeList(out), out.Notice)
}
