package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"comet-food-bot/internal/extract"
	"comet-food-bot/internal/plan"
	"comet-food-bot/internal/session"
)

// fieldSpec bundles everything the bot knows about one plan field: the
// slot-filling prompt, the error text repeated while the answer is rejected,
// the acceptance check for conversational input, and the edit-command handler.
// The slot-filling machine and the edit command share this registry so the two
// entry paths cannot drift apart.
type fieldSpec struct {
	prompt    string
	errorText string

	// accept interprets one conversational message as an answer for this
	// field. It fills the draft and reports whether the answer was usable.
	accept func(conv *session.Conversation, text string, ents extract.Entities) bool

	// edit applies an `edit <plan> <field> <value...>` command. Nil for
	// fields that cannot be edited after creation.
	edit func(p *plan.Plan, args []string) string
}

const maxPlanNameLength = 30

var fieldSpecs = map[session.Field]fieldSpec{
	session.FieldName: {
		prompt:    "What would you like to name this meal plan?",
		errorText: "Plan name is too long. Please use a shorter name (max 30 characters).",
		accept: func(conv *session.Conversation, text string, _ extract.Entities) bool {
			if len(text) > maxPlanNameLength {
				return false
			}
			conv.FillName(text)
			return true
		},
	},
	session.FieldTime: {
		prompt:    "How much time do you have for cooking? (e.g., 30 minutes)",
		errorText: "Please specify a valid time in minutes (e.g., '30 minutes' or '1 hour').",
		accept: func(conv *session.Conversation, _ string, ents extract.Entities) bool {
			if len(ents.Time) == 0 {
				return false
			}
			conv.FillTime(ents.Time[0])
			return true
		},
		edit: func(p *plan.Plan, args []string) string {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return msgInvalidFormat
			}
			if err := p.SetTime(minutes); err != nil {
				return fmt.Sprintf("❌ Error: %v", err)
			}
			return fmt.Sprintf("✅ Prep time updated to %d minutes", minutes)
		},
	},
	session.FieldBudget: {
		prompt:    "What's your budget for this meal? (e.g., $20)",
		errorText: "Please specify a valid budget amount (e.g., '$20' or '15.50').",
		accept: func(conv *session.Conversation, _ string, ents extract.Entities) bool {
			if len(ents.Money) == 0 {
				return false
			}
			conv.FillBudget(ents.Money[0])
			return true
		},
		edit: func(p *plan.Plan, args []string) string {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return msgInvalidFormat
			}
			if err := p.SetBudget(amount); err != nil {
				return fmt.Sprintf("❌ Error: %v", err)
			}
			return fmt.Sprintf("✅ Budget updated to $%.2f", amount)
		},
	},
	session.FieldIngredients: {
		prompt:    "What ingredients would you like to use? (separate with commas)",
		errorText: "Please provide ingredients separated by commas (e.g., 'chicken, rice, vegetables').",
		accept: func(conv *session.Conversation, text string, _ extract.Entities) bool {
			// A comma signals a deliberate list, as opposed to free text.
			if !strings.Contains(text, ",") {
				return false
			}
			ingredients := splitList(text)
			if len(ingredients) == 0 {
				return false
			}
			conv.FillIngredients(ingredients)
			return true
		},
		edit: func(p *plan.Plan, args []string) string {
			ingredients := splitList(strings.Join(args, " "))
			if err := p.SetIngredients(ingredients); err != nil {
				return fmt.Sprintf("❌ Error: %v", err)
			}
			return fmt.Sprintf("✅ Ingredients updated to: %s", strings.Join(p.Ingredients, ", "))
		},
	},
	session.FieldGoal: {
		prompt:    "What's your nutritional goal? (low_carb, high_protein, keto, low_fat, or low_calorie)",
		errorText: "Please specify a valid goal (low_carb, high_protein, keto, low_fat, or low_calorie).",
		accept: func(conv *session.Conversation, _ string, ents extract.Entities) bool {
			if ents.Goal == "" {
				return false
			}
			conv.FillGoal(ents.Goal)
			return true
		},
		edit: func(p *plan.Plan, args []string) string {
			goal := strings.Join(args, " ")
			if err := p.SetGoal(goal); err != nil {
				return fmt.Sprintf("❌ Error: %v", err)
			}
			return fmt.Sprintf("✅ Goal updated to: %s", p.Goal)
		},
	},
}

// splitList splits comma-separated user input into trimmed non-empty items.
func splitList(text string) []string {
	var items []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
