// Package dialog is the per-message entry point of the bot: it resolves the
// caller's conversation state, drives the multi-turn plan collection flow, and
// routes one-shot commands. Input is a sender identity plus raw text, output
// is at most one reply string.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"comet-food-bot/internal/extract"
	"comet-food-bot/internal/plan"
	"comet-food-bot/internal/session"
	"comet-food-bot/internal/spoonacular"
)

// RecipeService is the slice of the Spoonacular client the engine depends on.
type RecipeService interface {
	FindCandidates(ctx context.Context, cons spoonacular.Constraints) ([]spoonacular.Candidate, error)
	FilterAndEnrich(ctx context.Context, candidates []spoonacular.Candidate, cons spoonacular.Constraints) []spoonacular.RecipeDetail
}

// Engine wires the plan registry, the recipe service and the session store
// into the conversational front of the bot.
type Engine struct {
	plans    *plan.Registry
	recipes  RecipeService
	sessions *session.Store
}

// NewEngine creates a dialogue engine over the given collaborators.
func NewEngine(plans *plan.Registry, recipes RecipeService, sessions *session.Store) *Engine {
	return &Engine{
		plans:    plans,
		recipes:  recipes,
		sessions: sessions,
	}
}

// HandleMessage processes one inbound message and returns the reply text.
// The caller has already applied any group addressing rules; every message
// that reaches the engine produces exactly one reply.
func (e *Engine) HandleMessage(ctx context.Context, userID int64, text string) string {
	conv := e.sessions.Touch(userID)
	text = strings.TrimSpace(text)
	entities := extract.Extract(text)

	if conv.State == session.StateCollecting {
		return e.collectStep(conv, text, entities)
	}

	if isNewPlanTrigger(text, entities) {
		return e.startCollecting(conv, entities)
	}
	return e.route(ctx, text)
}

// isNewPlanTrigger reports whether a message should open the plan-creation
// flow: a detected new-plan intent, the /new command token, or a creation verb
// anywhere in the text.
func isNewPlanTrigger(text string, entities extract.Entities) bool {
	if entities.Command == extract.CommandNewPlan {
		return true
	}
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "/new") {
		return true
	}
	for _, verb := range []string{"create", "make", "start"} {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// startCollecting enters the collecting state, auto-fills every field the
// trigger message already answered, and prompts for the first missing one.
// When nothing is missing the flow finalizes immediately.
func (e *Engine) startCollecting(conv *session.Conversation, entities extract.Entities) string {
	conv.BeginCollecting()

	if len(entities.Time) > 0 {
		conv.FillTime(entities.Time[0])
	}
	if len(entities.Money) > 0 {
		conv.FillBudget(entities.Money[0])
	}
	if len(entities.Ingredients) > 0 {
		conv.FillIngredients(entities.Ingredients)
	}
	if entities.Goal != "" {
		conv.FillGoal(entities.Goal)
	}

	if next, ok := conv.NextField(); ok {
		return fieldSpecs[next].prompt
	}
	return e.finalize(conv)
}

var cancelWords = map[string]struct{}{"cancel": {}, "stop": {}, "quit": {}}

// collectStep interprets one message as the answer for the first pending
// field, in the canonical order name, time, budget, ingredients, goal.
func (e *Engine) collectStep(conv *session.Conversation, text string, entities extract.Entities) string {
	if _, ok := cancelWords[strings.ToLower(text)]; ok {
		conv.Reset()
		return "Plan creation cancelled."
	}

	current, ok := conv.NextField()
	if !ok {
		// Collecting with nothing pending cannot normally happen; recover
		// by finalizing whatever was gathered.
		return e.finalize(conv)
	}

	spec := fieldSpecs[current]
	if !spec.accept(conv, text, entities) {
		return spec.errorText
	}

	if conv.Done() {
		return e.finalize(conv)
	}
	next, _ := conv.NextField()
	return fieldSpecs[next].prompt
}

// finalize commits the collected draft as a new plan and resets the
// conversation. Both the slot-filling flow and the short-circuit entry path
// end here; the one-shot `new` command goes through commitPlan directly.
func (e *Engine) finalize(conv *session.Conversation) string {
	draft := conv.Draft
	conv.Reset()

	name := draft.Name
	if name == "" {
		name = "plan_" + time.Now().Format("20060102_150405")
	}
	goal := draft.Goal
	if goal == "" {
		goal = plan.GoalNone
	}
	return e.commitPlan(name, draft.TimeMinutes, draft.Budget, draft.Ingredients, goal)
}

// commitPlan registers a plan and formats the confirmation. Registry failures
// come back as user-facing messages; no partial plan is ever left behind.
func (e *Engine) commitPlan(name string, minutes int, budget float64, ingredients []string, goal string) string {
	p, err := e.plans.Create(name, budget, goal, ingredients, minutes)
	if err != nil {
		if errors.Is(err, plan.ErrDuplicateName) {
			return fmt.Sprintf("❌ A plan named '%s' already exists. Choose a different name or edit the existing plan.", name)
		}
		return fmt.Sprintf("❌ Error creating plan: %v", err)
	}

	return fmt.Sprintf(
		"✅ Successfully created plan: %s\n"+
			"⏰ Time: %d minutes\n"+
			"💰 Budget: $%.2f\n"+
			"🥗 Ingredients: %s\n"+
			"🎯 Goal: %s\n\n"+
			"Type 'show %s' to view details",
		p.Name, p.Time, p.Budget, strings.Join(p.Ingredients, ", "), p.Goal, p.Name)
}
