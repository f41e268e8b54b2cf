package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_UnmarshalPositionalIngredients(t *testing.T) {
	raw := `{
		"idMeal": "52772",
		"strMeal": "Teriyaki Chicken Casserole",
		"strCategory": "Chicken",
		"strArea": "Japanese",
		"strTags": "Meat, Casserole",
		"strYoutube": "",
		"strSource": null,
		"strIngredient1": "soy sauce",
		"strMeasure1": "3/4 cup",
		"strIngredient2": "water",
		"strMeasure2": " ",
		"strIngredient3": "",
		"strMeasure3": "1 tbs"
	}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "52772", r.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", r.Name)
	assert.Equal(t, "Japanese", r.Area)
	assert.Equal(t, []string{"Meat", "Casserole"}, r.Tags)
	assert.Equal(t, []string{"3/4 cup soy sauce", "water"}, r.Ingredients)
	assert.Empty(t, r.VideoURL)
	assert.Empty(t, r.SourceURL)
}

func TestRecipe_UnmarshalStoredForm(t *testing.T) {
	raw := `{"idMeal": 52772, "strMeal": "Soup", "strArea": "Unknown", "strIngredients": "salt,  , pepper"}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "52772", r.ID)
	assert.Empty(t, r.Area)
	assert.Equal(t, []string{"salt", "pepper"}, r.Ingredients)
	assert.NotNil(t, r.Tags)
}

func TestRecipe_MarshalStoredForm(t *testing.T) {
	r := Recipe{
		ID:          "52772",
		Name:        "Soup",
		Tags:        []string{"Meat", "Casserole"},
		Ingredients: []string{"3/4 cup soy sauce", "water"},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "52772", raw["idMeal"])
	assert.Equal(t, "Meat,Casserole", raw["strTags"])
	assert.Equal(t, "3/4 cup soy sauce, water", raw["strIngredients"])
	assert.NotContains(t, raw, "strCategory")
}

func TestRecipe_Malformed(t *testing.T) {
	var r Recipe
	assert.Error(t, json.Unmarshal([]byte(`["not", "an", "object"]`), &r))
}

func TestRecipe_Clone(t *testing.T) {
	r := &Recipe{ID: "r1", Ingredients: []string{"salt"}}
	cp := r.Clone()
	cp.Ingredients[0] = "sugar"

	assert.Equal(t, "salt", r.Ingredients[0])
	assert.Nil(t, (*Recipe)(nil).Clone())
}
