package plan

import (
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	t.Run("CreateThenGet", func(t *testing.T) {
		r := NewRegistry()
		created, err := r.Create("lunch", 15.50, "low_carb", []string{"chicken", "rice"}, 60)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		got, ok := r.Get("lunch")
		if !ok {
			t.Fatal("Expected plan 'lunch' to be registered")
		}
		if got != created {
			t.Error("Expected Get to return the registered plan instance")
		}
		if got.Budget != 15.50 || got.Time != 60 || got.Goal != "low_carb" {
			t.Errorf("Plan fields not preserved: %+v", got)
		}
		if len(got.Recipes) != 0 {
			t.Errorf("Expected empty recipe list, got %d entries", len(got.Recipes))
		}
	})

	t.Run("DuplicateNameLeavesExistingUntouched", func(t *testing.T) {
		r := NewRegistry()
		if _, err := r.Create("lunch", 15.50, "none", []string{"rice"}, 60); err != nil {
			t.Fatalf("Failed to create plan: %v", err)
		}

		_, err := r.Create("lunch", 99, "keto", []string{"beef"}, 5)
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("Expected ErrDuplicateName, got %v", err)
		}

		got, _ := r.Get("lunch")
		if got.Budget != 15.50 || got.Time != 60 {
			t.Errorf("Existing plan was modified: %+v", got)
		}
	})

	t.Run("RemoveNotFound", func(t *testing.T) {
		r := NewRegistry()
		err := r.Remove("ghost")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListAllKeepsCreationOrder", func(t *testing.T) {
		r := NewRegistry()
		for _, name := range []string{"alpha", "beta", "gamma"} {
			if _, err := r.Create(name, 10, "none", []string{"rice"}, 30); err != nil {
				t.Fatalf("Failed to create plan %s: %v", name, err)
			}
		}
		if err := r.Remove("beta"); err != nil {
			t.Fatalf("Failed to remove plan: %v", err)
		}

		plans := r.ListAll()
		if len(plans) != 2 {
			t.Fatalf("Expected 2 plans, got %d", len(plans))
		}
		if plans[0].Name != "alpha" || plans[1].Name != "gamma" {
			t.Errorf("Expected [alpha gamma], got [%s %s]", plans[0].Name, plans[1].Name)
		}
	})
}
