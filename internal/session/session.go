// Package session tracks per-user conversation state for the multi-turn plan
// collection flow.
package session

import (
	"time"
)

// State is the conversation phase of a single user.
type State string

const (
	// StateNone indicates no active flow; messages fall through to the
	// command router.
	StateNone State = "none"
	// StateCollecting indicates a plan-creation flow is in progress and
	// messages are interpreted as answers for the next pending field.
	StateCollecting State = "collecting_plan_info"
)

// Field names one slot of the plan-creation flow.
type Field string

const (
	FieldName        Field = "name"
	FieldTime        Field = "time"
	FieldBudget      Field = "budget"
	FieldIngredients Field = "ingredients"
	FieldGoal        Field = "goal"
)

// RequiredFields returns the full slot set in canonical prompt order. The
// order is fixed so that prompts are reproducible: name, time, budget,
// ingredients, goal.
func RequiredFields() []Field {
	return []Field{FieldName, FieldTime, FieldBudget, FieldIngredients, FieldGoal}
}

// Draft accumulates the collected field values of an in-progress flow.
// Presence is tracked through Conversation.Pending, never here: a field is
// either still pending or its value is set in the draft, never both.
type Draft struct {
	Name        string
	TimeMinutes int
	Budget      float64
	Ingredients []string
	Goal        string
}

// Conversation is the per-user state machine instance.
type Conversation struct {
	UserID       int64
	State        State
	Pending      []Field // ordered subset of RequiredFields
	Draft        Draft
	LastActivity time.Time
}

// BeginCollecting enters the collecting state with every field pending and an
// empty draft.
func (c *Conversation) BeginCollecting() {
	c.State = StateCollecting
	c.Pending = RequiredFields()
	c.Draft = Draft{}
}

// Reset returns the conversation to the idle state and clears the draft.
func (c *Conversation) Reset() {
	c.State = StateNone
	c.Pending = nil
	c.Draft = Draft{}
}

// NextField returns the first pending field in canonical order.
func (c *Conversation) NextField() (Field, bool) {
	if len(c.Pending) == 0 {
		return "", false
	}
	return c.Pending[0], true
}

// Done reports whether every required field has been collected.
func (c *Conversation) Done() bool {
	return len(c.Pending) == 0
}

// FillName records the plan name and clears its pending slot.
func (c *Conversation) FillName(name string) {
	c.Draft.Name = name
	c.markFilled(FieldName)
}

// FillTime records the cooking-time ceiling in minutes.
func (c *Conversation) FillTime(minutes int) {
	c.Draft.TimeMinutes = minutes
	c.markFilled(FieldTime)
}

// FillBudget records the budget amount.
func (c *Conversation) FillBudget(amount float64) {
	c.Draft.Budget = amount
	c.markFilled(FieldBudget)
}

// FillIngredients records the ingredient list.
func (c *Conversation) FillIngredients(ingredients []string) {
	c.Draft.Ingredients = ingredients
	c.markFilled(FieldIngredients)
}

// FillGoal records the dietary goal tag.
func (c *Conversation) FillGoal(goal string) {
	c.Draft.Goal = goal
	c.markFilled(FieldGoal)
}

func (c *Conversation) markFilled(field Field) {
	for i, f := range c.Pending {
		if f == field {
			c.Pending = append(c.Pending[:i], c.Pending[i+1:]...)
			return
		}
	}
}
