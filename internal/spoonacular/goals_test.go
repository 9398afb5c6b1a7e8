package spoonacular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func detailWithNutrients(nutrients map[string]float64) *RecipeDetail {
	d := &RecipeDetail{}
	for name, amount := range nutrients {
		d.Nutrition.Nutrients = append(d.Nutrition.Nutrients, Nutrient{Name: name, Amount: amount})
	}
	return d
}

func TestGoalSatisfied(t *testing.T) {
	balanced := detailWithNutrients(map[string]float64{
		"Carbohydrates": 45,
		"Protein":       30,
		"Fat":           10,
		"Calories":      400,
	})

	cases := []struct {
		goal string
		want bool
	}{
		{"low_carb", true},
		{"high_protein", true},
		{"low_fat", true},
		{"low_calorie", true},
		{"keto", false}, // fat 10 is not > 40
		{"none", true},
		{"", true},
		{"healthy eating", true}, // unknown goals never constrain
	}
	for _, tc := range cases {
		t.Run(tc.goal, func(t *testing.T) {
			assert.Equal(t, tc.want, goalSatisfied(tc.goal, balanced))
		})
	}

	t.Run("KetoQualifies", func(t *testing.T) {
		fatty := detailWithNutrients(map[string]float64{
			"Carbohydrates": 15,
			"Fat":           45,
		})
		assert.True(t, goalSatisfied("keto", fatty))
	})

	t.Run("MissingNutrientCountsAsZero", func(t *testing.T) {
		empty := &RecipeDetail{}
		assert.True(t, goalSatisfied("low_carb", empty))
		assert.False(t, goalSatisfied("high_protein", empty))
	})
}
