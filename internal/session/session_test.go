package session

import (
	"testing"
	"time"
)

func TestConversationFlow(t *testing.T) {
	t.Run("CanonicalFieldOrder", func(t *testing.T) {
		want := []Field{FieldName, FieldTime, FieldBudget, FieldIngredients, FieldGoal}
		got := RequiredFields()
		if len(got) != len(want) {
			t.Fatalf("Expected %d fields, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Field %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("FillAdvancesPending", func(t *testing.T) {
		conv := &Conversation{UserID: 1}
		conv.BeginCollecting()
		if conv.State != StateCollecting {
			t.Fatalf("Expected state %s, got %s", StateCollecting, conv.State)
		}

		next, ok := conv.NextField()
		if !ok || next != FieldName {
			t.Fatalf("Expected first pending field to be name, got %s", next)
		}

		conv.FillName("lunch")
		next, _ = conv.NextField()
		if next != FieldTime {
			t.Errorf("Expected next field time, got %s", next)
		}

		// out-of-order auto-fill skips the slot in between
		conv.FillIngredients([]string{"chicken", "rice"})
		next, _ = conv.NextField()
		if next != FieldTime {
			t.Errorf("Expected next field still time, got %s", next)
		}

		conv.FillTime(45)
		conv.FillBudget(12)
		conv.FillGoal("keto")
		if !conv.Done() {
			t.Errorf("Expected all fields collected, pending: %v", conv.Pending)
		}
		if conv.Draft.Name != "lunch" || conv.Draft.TimeMinutes != 45 || conv.Draft.Budget != 12 {
			t.Errorf("Draft not populated: %+v", conv.Draft)
		}
	})

	t.Run("ResetClearsDraft", func(t *testing.T) {
		conv := &Conversation{UserID: 1}
		conv.BeginCollecting()
		conv.FillName("lunch")
		conv.Reset()

		if conv.State != StateNone {
			t.Errorf("Expected state %s, got %s", StateNone, conv.State)
		}
		if conv.Draft.Name != "" {
			t.Errorf("Expected cleared draft, got %+v", conv.Draft)
		}
		if len(conv.Pending) != 0 {
			t.Errorf("Expected no pending fields, got %v", conv.Pending)
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("TouchCreatesLazily", func(t *testing.T) {
		s := NewStore()
		if s.Len() != 0 {
			t.Fatalf("Expected empty store, got %d", s.Len())
		}

		conv := s.Touch(42)
		if conv.UserID != 42 || conv.State != StateNone {
			t.Errorf("Unexpected fresh conversation: %+v", conv)
		}
		if s.Touch(42) != conv {
			t.Error("Expected the same conversation on repeat contact")
		}
		if s.Len() != 1 {
			t.Errorf("Expected 1 conversation, got %d", s.Len())
		}
	})

	t.Run("TouchUpdatesLastActivity", func(t *testing.T) {
		s := NewStore()
		conv := s.Touch(42)
		conv.LastActivity = time.Now().Add(-time.Hour)

		s.Touch(42)
		if time.Since(conv.LastActivity) > time.Minute {
			t.Error("Expected Touch to refresh LastActivity")
		}
	})

	t.Run("CleanupIdle", func(t *testing.T) {
		s := NewStore()
		stale := s.Touch(1)
		stale.LastActivity = time.Now().Add(-time.Hour)
		s.Touch(2)

		removed := s.CleanupIdle(IdleTimeout)
		if removed != 1 {
			t.Errorf("Expected 1 removal, got %d", removed)
		}
		if s.Len() != 1 {
			t.Errorf("Expected 1 surviving conversation, got %d", s.Len())
		}
		if s.Touch(2).State != StateNone {
			t.Error("Expected user 2 conversation to survive")
		}
	})
}
