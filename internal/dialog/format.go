package dialog

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"comet-food-bot/internal/plan"
	"comet-food-bot/internal/spoonacular"
)

const msgWelcome = "🎉 Welcome to CometFoodBot!\n" +
	"I'm here to help you plan your meals and achieve your food goals.\n" +
	"Type 'help' to see what I can do for you!"

const msgHelp = `🤖 CometFoodBot Commands

📝 Create & Manage Plans
• new <name> <time> <budget> <ingredients> <goal>
  Example: new lunch 60 15.50 chicken,rice,vegetables low_carb

⚡ Available Health Goals:
• low_carb - Less than 50g carbs per serving
• high_protein - More than 25g protein per serving
• low_fat - Less than 15g fat per serving
• low_calorie - Under 500 calories per serving
• keto - Less than 20g carbs and over 40g fat

🛠️ Plan Management
• edit <plan> <field> <value>
  Fields:
  - budget (in dollars)
  - time (in minutes)
  - goal (health goals listed above)
  - ingredients (comma-separated)
• show <plan> - View specific plan details
• show all - View all your plans
• forget <plan> - Delete a plan

🔍 Recipe Commands
• recommend <plan> - Get personalized recipe suggestions based on your plan

💡 Usage Tips
• Time: Specify cooking time in minutes (e.g., 30, 45, 60)
• Budget: Enter amount in dollars (e.g., 15.50, 20.00)
• Ingredients: Separate with commas (e.g., chicken,rice,broccoli)
• Multiple words: Use underscores (e.g., ground_beef, olive_oil)`

// displayPlan renders a plan in the indented key/value layout used by the
// show command.
func displayPlan(p *plan.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Plan %s:\n", p.Name)
	fmt.Fprintf(&sb, "\tbudget: $%.2f\n", p.Budget)
	fmt.Fprintf(&sb, "\tgoal: %s\n", p.Goal)
	fmt.Fprintf(&sb, "\tingredients: %s\n", strings.Join(p.Ingredients, ", "))
	fmt.Fprintf(&sb, "\ttime: %d minutes\n", p.Time)
	if len(p.Recipes) == 0 {
		sb.WriteString("\trecipes: none fetched yet")
	} else {
		sb.WriteString("\trecipes:")
		for _, r := range p.Recipes {
			fmt.Fprintf(&sb, "\n\t- %s", r.Title)
		}
	}
	return sb.String()
}

// formatRecipeDetail renders one enriched recipe for the recommend command.
func formatRecipeDetail(d *spoonacular.RecipeDetail) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🍽️ %s\n", d.Title)
	fmt.Fprintf(&sb, "⏰ Ready in: %d minutes\n", d.ReadyInMinutes)
	fmt.Fprintf(&sb, "👥 Servings: %d\n", d.Servings)
	fmt.Fprintf(&sb, "💰 Price per serving: $%.2f\n", d.PricePerServing/100)
	fmt.Fprintf(&sb, "🔥 Calories: %g\n", d.NutrientAmount("Calories"))
	fmt.Fprintf(&sb, "💪 Protein: %gg\n", d.NutrientAmount("Protein"))
	fmt.Fprintf(&sb, "🍞 Carbs: %gg\n", d.NutrientAmount("Carbohydrates"))
	fmt.Fprintf(&sb, "🥑 Fat: %gg\n", d.NutrientAmount("Fat"))
	sb.WriteString("📝 Ingredients:")
	for _, ing := range d.ExtendedIngredients {
		fmt.Fprintf(&sb, "\n• %s", ing.Original)
	}
	if instructions := plainInstructions(d.Instructions); instructions != "" {
		fmt.Fprintf(&sb, "\n\n👩‍🍳 Instructions:\n%s", instructions)
	}
	return sb.String()
}

// plainInstructions strips the HTML markup the detail endpoint embeds in its
// instructions field. Unparseable input is passed through untouched.
func plainInstructions(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.TrimSpace(doc.Text())
}
