package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"planner/internal/errors"
)

// MaxIngredientSlots is the number of positional ingredient/measure pairs a
// catalog record can carry.
const MaxIngredientSlots = 20

// ingredientSeparator joins ingredients in the single-string record form.
const ingredientSeparator = ", "

// Recipe is a catalog dish, either as returned by the catalog or embedded in
// an event. ID is the catalog identifier and the membership key inside an
// event.
type Recipe struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Thumbnail    string
	Instructions string
	Tags         []string
	Ingredients  []string
	VideoURL     string
	SourceURL    string
}

// recipeWire is the catalog's record shape, which the events API stores verbatim.
type recipeWire struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Category     string `json:"strCategory,omitempty"`
	Area         string `json:"strArea,omitempty"`
	Thumbnail    string `json:"strMealThumb,omitempty"`
	Instructions string `json:"strInstructions,omitempty"`
	Tags         string `json:"strTags,omitempty"`
	Ingredients  string `json:"strIngredients,omitempty"`
	VideoURL     string `json:"strYoutube,omitempty"`
	SourceURL    string `json:"strSource,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (r Recipe) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(recipeWire{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Area:         r.Area,
		Thumbnail:    r.Thumbnail,
		Instructions: r.Instructions,
		Tags:         strings.Join(r.Tags, ","),
		Ingredients:  strings.Join(r.Ingredients, ingredientSeparator),
		VideoURL:     r.VideoURL,
		SourceURL:    r.SourceURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode recipe")
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts both the positional
// strIngredientN/strMeasureN form and the single strIngredients form.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode recipe")
	}

	*r = Recipe{
		ID:           rawString(raw, "idMeal"),
		Name:         rawString(raw, "strMeal"),
		Category:     displayField(raw, "strCategory"),
		Area:         displayField(raw, "strArea"),
		Thumbnail:    displayField(raw, "strMealThumb"),
		Instructions: displayField(raw, "strInstructions"),
		Tags:         splitTags(displayField(raw, "strTags")),
		Ingredients:  ingredientsOf(raw),
		VideoURL:     displayField(raw, "strYoutube"),
		SourceURL:    displayField(raw, "strSource"),
	}

	return nil
}

// Clone returns a deep copy of r.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Tags = append([]string(nil), r.Tags...)
	cp.Ingredients = append([]string(nil), r.Ingredients...)

	return &cp
}

func ingredientsOf(raw map[string]any) []string {
	if joined := rawString(raw, "strIngredients"); joined != "" {
		ingredients := make([]string, 0)
		for _, part := range strings.Split(joined, ingredientSeparator) {
			if part = strings.TrimSpace(part); part != "" {
				ingredients = append(ingredients, part)
			}
		}

		return ingredients
	}

	ingredients := make([]string, 0)
	for i := 1; i <= MaxIngredientSlots; i++ {
		ingredient := rawString(raw, "strIngredient"+strconv.Itoa(i))
		if ingredient == "" {
			continue
		}
		if measure := rawString(raw, "strMeasure"+strconv.Itoa(i)); measure != "" {
			ingredient = measure + " " + ingredient
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients
}

func splitTags(tags string) []string {
	out := make([]string, 0)
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}

	return out
}

// rawString reads a scalar field; numbers are rendered without exponent.
func rawString(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// displayField treats the catalog's placeholder values as absent.
func displayField(raw map[string]any, key string) string {
	v := rawString(raw, key)
	if v == "Unknown" || v == "null" {
		return ""
	}

	return v
}
