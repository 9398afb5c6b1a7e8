package spoonacular

// goalSatisfied applies the nutrition-goal predicate for goal to a recipe
// detail. Thresholds are per serving, in grams except for calories:
//
//	low_carb      carbohydrates < 50
//	high_protein  protein > 25
//	low_fat       fat < 15
//	low_calorie   calories < 500
//	keto          carbohydrates < 20 and fat > 40
//
// "none" and unknown goals always pass.
func goalSatisfied(goal string, detail *RecipeDetail) bool {
	switch goal {
	case "low_carb":
		return detail.NutrientAmount("Carbohydrates") < 50
	case "high_protein":
		return detail.NutrientAmount("Protein") > 25
	case "low_fat":
		return detail.NutrientAmount("Fat") < 15
	case "low_calorie":
		return detail.NutrientAmount("Calories") < 500
	case "keto":
		return detail.NutrientAmount("Carbohydrates") < 20 && detail.NutrientAmount("Fat") > 40
	default:
		return true
	}
}
