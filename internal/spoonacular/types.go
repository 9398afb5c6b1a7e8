// Package spoonacular wraps the Spoonacular recipe API: ingredient-based
// search, per-recipe detail lookups through an id-keyed cache, and the
// constraint filtering that turns raw candidates into recommendations.
package spoonacular

import (
	"errors"
	"fmt"
)

// Candidate is one recipe search result before detail enrichment.
type Candidate struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Nutrient is one named nutrition figure reported by the detail endpoint.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Nutrition wraps the nutrient list of a recipe detail.
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// ExtendedIngredient is one ingredient line of a recipe detail.
type ExtendedIngredient struct {
	Original string `json:"original"`
}

// RecipeDetail is the full recipe record returned by the detail endpoint.
// PricePerServing is reported in cents.
type RecipeDetail struct {
	ID                  int                  `json:"id"`
	Title               string               `json:"title"`
	ReadyInMinutes      int                  `json:"readyInMinutes"`
	Servings            int                  `json:"servings"`
	PricePerServing     float64              `json:"pricePerServing"`
	ExtendedIngredients []ExtendedIngredient `json:"extendedIngredients"`
	Instructions        string               `json:"instructions"`
	Nutrition           Nutrition            `json:"nutrition"`
}

// NutrientAmount returns the amount of the named nutrient, or 0 when the
// detail does not report it.
func (d *RecipeDetail) NutrientAmount(name string) float64 {
	for _, n := range d.Nutrition.Nutrients {
		if n.Name == name {
			return n.Amount
		}
	}
	return 0
}

// Constraints carries the plan fields the API calls and filters depend on.
type Constraints struct {
	Ingredients []string
	TimeMinutes int
	Budget      float64
	Goal        string
}

// ErrUpstreamTimeout is returned after the search call timed out on every
// retry attempt.
var ErrUpstreamTimeout = errors.New("recipe search timed out after multiple attempts")

// UpstreamError is any non-timeout failure reported by the recipe API. It is
// never retried.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("recipe api error: status %d: %s", e.StatusCode, e.Message)
}
