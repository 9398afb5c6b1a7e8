package telegram

import "testing"

func TestStripMention(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantText      string
		wantAddressed bool
	}{
		{
			name:          "MentionFirst",
			text:          "@CometFoodBot show all",
			wantText:      "show all",
			wantAddressed: true,
		},
		{
			name:          "MentionLast",
			text:          "show all @CometFoodBot",
			wantText:      "show all",
			wantAddressed: true,
		},
		{
			name:          "MentionInTheMiddle",
			text:          "hey @CometFoodBot show all",
			wantText:      "hey  show all",
			wantAddressed: true,
		},
		{
			name:          "NoMention",
			text:          "show all",
			wantText:      "",
			wantAddressed: false,
		},
		{
			name:          "OnlyMention",
			text:          "@CometFoodBot",
			wantText:      "",
			wantAddressed: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, addressed := stripMention(tc.text, "@CometFoodBot")
			if addressed != tc.wantAddressed {
				t.Fatalf("Expected addressed=%v, got %v", tc.wantAddressed, addressed)
			}
			if got != tc.wantText {
				t.Errorf("Expected %q, got %q", tc.wantText, got)
			}
		})
	}
}
