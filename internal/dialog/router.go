package dialog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"comet-food-bot/internal/session"
	"comet-food-bot/internal/spoonacular"
)

const msgInvalidFormat = "❌ Invalid input format. Type 'help' to see the correct format."

// route dispatches a single-line command: the first whitespace-delimited
// token selects the command, case-insensitively and tolerating one leading
// slash; everything after it is lowercased argument text.
func (e *Engine) route(ctx context.Context, text string) string {
	if text == "" {
		return "Please enter a command. Type 'help' for available commands."
	}

	tokens := strings.Fields(text)
	command := strings.ToLower(strings.TrimPrefix(tokens[0], "/"))
	rest := strings.ToLower(strings.Join(tokens[1:], " "))

	switch command {
	case "hello", "hi", "start":
		return msgWelcome
	case "new":
		return e.handleNew(rest)
	case "edit":
		return e.handleEdit(rest)
	case "show":
		return e.handleShow(rest)
	case "forget":
		return e.handleForget(rest)
	case "recommend":
		return e.handleRecommend(ctx, rest)
	case "help":
		return msgHelp
	default:
		return "❌ Unknown command. Type 'help' to see available commands."
	}
}

func (e *Engine) handleNew(rest string) string {
	args := strings.Fields(rest)
	if len(args) < 5 {
		return "❌ Incorrect format! Please use:\n" +
			"'new <name> <time_minutes> <budget> <ingredients> <goal>'\n" +
			"Example: new HealthyMeal 30 20.50 chicken,rice,beans low_carb"
	}

	name := args[0]
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return msgInvalidFormat
	}
	budget, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return msgInvalidFormat
	}
	ingredients := splitList(args[3])
	goal := strings.Join(args[4:], " ")

	return e.commitPlan(name, minutes, budget, ingredients, goal)
}

func (e *Engine) handleEdit(rest string) string {
	args := strings.Fields(rest)
	if len(args) < 3 {
		return "❌ Please specify what to edit: 'edit <plan_name> <budget/goal/ingredients/time> <new_value>'"
	}

	p, ok := e.plans.Get(args[0])
	if !ok {
		return msgPlanNotFound(args[0])
	}

	spec, ok := fieldSpecs[session.Field(args[1])]
	if !ok || spec.edit == nil {
		return "❌ Invalid field. You can edit: budget, goal, ingredients, or time"
	}
	return spec.edit(p, args[2:])
}

func (e *Engine) handleShow(rest string) string {
	if rest == "" {
		return "❌ Please specify a plan name or use 'show all'"
	}

	if rest == "all" {
		plans := e.plans.ListAll()
		if len(plans) == 0 {
			return "No plans created yet. Use 'new' to create one!"
		}
		parts := make([]string, 0, len(plans))
		for _, p := range plans {
			parts = append(parts, displayPlan(p))
		}
		return strings.Join(parts, "\n\n")
	}

	p, ok := e.plans.Get(rest)
	if !ok {
		return msgPlanNotFound(rest)
	}
	return displayPlan(p)
}

func (e *Engine) handleForget(rest string) string {
	if rest == "" {
		return "❌ Please specify which plan to delete"
	}
	if err := e.plans.Remove(rest); err != nil {
		return msgPlanNotFound(rest)
	}
	return fmt.Sprintf("✅ Plan '%s' has been deleted", rest)
}

func (e *Engine) handleRecommend(ctx context.Context, rest string) string {
	if rest == "" {
		return "❌ Please specify a plan name: 'recommend <plan_name>'"
	}

	p, ok := e.plans.Get(rest)
	if !ok {
		return "❌ Plan not found. Use 'new' to create one first."
	}

	cons := spoonacular.Constraints{
		Ingredients: p.Ingredients,
		TimeMinutes: p.Time,
		Budget:      p.Budget,
		Goal:        p.Goal,
	}

	candidates, err := e.recipes.FindCandidates(ctx, cons)
	if err != nil {
		log.Printf("Error searching recipes for plan '%s': %v", p.Name, err)
		if errors.Is(err, spoonacular.ErrUpstreamTimeout) {
			return "❌ Recipe search timed out. Please try again in a moment."
		}
		return "❌ Recipe search failed. Please try again later."
	}

	details := e.recipes.FilterAndEnrich(ctx, candidates, cons)
	if len(details) == 0 {
		return "No recipes found for your ingredients."
	}
	p.SetRecipes(details)

	var sb strings.Builder
	fmt.Fprintf(&sb, "🍽️ Recommended recipes for %s:\n", p.Name)
	for i := range details {
		if i >= 3 {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(formatRecipeDetail(&details[i]))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func msgPlanNotFound(name string) string {
	return fmt.Sprintf("❌ Plan '%s' not found. Use 'show all' to see available plans.", name)
}
