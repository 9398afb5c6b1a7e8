// Package plan holds the meal-plan entity and the in-memory registry that
// owns every plan for the lifetime of the process.
package plan

import (
	"strings"

	"comet-food-bot/internal/spoonacular"
)

// GoalNone marks a plan without a dietary goal. Goal checks always pass for it.
const GoalNone = "none"

// Plan is one named meal plan. Plans are exclusively owned by the Registry
// and mutated in place through the validating setters.
type Plan struct {
	Name        string
	Budget      float64 // currency-agnostic, dollars in the UI
	Time        int     // minutes
	Goal        string
	Ingredients []string
	Recipes     []spoonacular.RecipeDetail
}

// New validates and builds a plan. Budget and time must be non-negative, the
// name and the ingredient list must be non-empty.
func New(name string, budget float64, goal string, ingredients []string, timeMinutes int) (*Plan, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "name cannot be empty"}
	}
	if budget < 0 {
		return nil, &ValidationError{Field: "budget", Reason: "budget must be positive"}
	}
	if timeMinutes < 0 {
		return nil, &ValidationError{Field: "time", Reason: "time must be positive"}
	}
	normalized := normalizeIngredients(ingredients)
	if len(normalized) == 0 {
		return nil, &ValidationError{Field: "ingredients", Reason: "ingredients are required"}
	}
	if goal == "" {
		goal = GoalNone
	}

	return &Plan{
		Name:        name,
		Budget:      budget,
		Time:        timeMinutes,
		Goal:        goal,
		Ingredients: normalized,
	}, nil
}

// SetBudget replaces the plan budget. Negative amounts are rejected.
func (p *Plan) SetBudget(amount float64) error {
	if amount < 0 {
		return &ValidationError{Field: "budget", Reason: "budget must be positive"}
	}
	p.Budget = amount
	return nil
}

// SetTime replaces the cooking-time ceiling in minutes.
func (p *Plan) SetTime(minutes int) error {
	if minutes < 0 {
		return &ValidationError{Field: "time", Reason: "time must be positive"}
	}
	p.Time = minutes
	return nil
}

// SetGoal replaces the dietary goal. Any non-empty word is accepted; unknown
// goals simply never constrain recipe filtering.
func (p *Plan) SetGoal(goal string) error {
	if goal == "" {
		goal = GoalNone
	}
	p.Goal = goal
	return nil
}

// SetIngredients replaces the ingredient list. An empty list is rejected.
func (p *Plan) SetIngredients(ingredients []string) error {
	normalized := normalizeIngredients(ingredients)
	if len(normalized) == 0 {
		return &ValidationError{Field: "ingredients", Reason: "ingredients list cannot be empty"}
	}
	p.Ingredients = normalized
	return nil
}

// SetRecipes stores the latest successful recommendation fetch.
func (p *Plan) SetRecipes(recipes []spoonacular.RecipeDetail) {
	p.Recipes = recipes
}

func normalizeIngredients(ingredients []string) []string {
	var out []string
	for _, ing := range ingredients {
		ing = strings.ToLower(strings.TrimSpace(ing))
		if ing != "" {
			out = append(out, ing)
		}
	}
	return out
}
