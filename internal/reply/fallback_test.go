package reply

import (
	"strings"
	"testing"
)

func TestFallback_TopicSniffers(t *testing.T) {
	g := testGenerator(t)

	tests := []struct {
		message string
		want    string // substring of the canned reply
	}{
		{"what's the weather like today?", "weather"},
		{"what time is it?", "clock"},
		{"any news today?", "news"},
		{"are you a robot?", "rule-based"},
		{"tell me a joke", "humor"},
		{"I'm hungry, any pizza nearby?", "diet"},
		{"what is 2+2", "calculator"},
		{"where does he live?", "Munich"},
		{"hola amigo", "English"},
		{"how old is he?", "experience"},
		{"what's his salary?", "Compensation"},
		{"does he have hobbies?", "bouldering"},
		{"is React better than Vue?", "framework wars"},
		{"you are awesome", "compliment"},
		{"yes", "lost the thread"},
		{"I'm confused, help", "Happy to help"},
	}
	for _, tt := range tests {
		resp := g.fallback(tt.message)
		if !strings.Contains(resp.Text, tt.want) {
			t.Errorf("fallback(%q) = %q, want it to contain %q", tt.message, resp.Text, tt.want)
		}
	}
}

// The cascade is ordered: topical entries outrank the bare yes/no catch,
// so a message that is not just "yes"/"no" still reaches its topic.
func TestFallback_OrderFirstMatchWins(t *testing.T) {
	g := testGenerator(t)

	resp := g.fallback("no news please")
	if !strings.Contains(resp.Text, "news") {
		t.Errorf("expected the news entry to fire, got %q", resp.Text)
	}
}

func TestFallback_NoMatchApologizes(t *testing.T) {
	g := testGenerator(t)

	resp := g.fallback("zorp glorp")
	if resp.Text == "" {
		t.Fatal("unmatched fallback must still answer")
	}
	if len(resp.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(resp.Suggestions))
	}
}
