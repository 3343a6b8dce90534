package moderation

import (
	"reflect"
	"testing"
)

func TestEvaluateNoWords(t *testing.T) {
	s := NewStore()
	e := NewFilterEngine(s)

	res := e.Evaluate("guild1", "cualquier mensaje")
	if res.Matched {
		t.Error("Evaluate() with no banned words should not match")
	}
}

func TestEvaluateMatch(t *testing.T) {
	s := NewStore()
	e := NewFilterEngine(s)

	s.AddBannedWord("guild1", "spam")
	s.AddBannedWord("guild1", "estafa")
	s.SetFilterAction("guild1", ActionWarn)

	tests := []struct {
		name    string
		content string
		matched bool
		words   []string
	}{
		{"exact word", "esto es spam", true, []string{"spam"}},
		{"case insensitive", "ESTO ES SPAM", true, []string{"spam"}},
		{"substring of longer word", "mensaje de spammer", true, []string{"spam"}},
		{"multiple matches", "spam y estafa juntos", true, []string{"estafa", "spam"}},
		{"clean message", "hola a todos", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Evaluate("guild1", tt.content)
			if res.Matched != tt.matched {
				t.Errorf("Evaluate(%q).Matched = %v, want %v", tt.content, res.Matched, tt.matched)
			}
			if !reflect.DeepEqual(res.Words, tt.words) {
				t.Errorf("Evaluate(%q).Words = %v, want %v", tt.content, res.Words, tt.words)
			}
			if tt.matched && res.Action != ActionWarn {
				t.Errorf("Evaluate(%q).Action = %s, want %s", tt.content, res.Action, ActionWarn)
			}
		})
	}
}

func TestEvaluateDefaultAction(t *testing.T) {
	s := NewStore()
	e := NewFilterEngine(s)

	// Words configured but no action chosen yet
	s.AddBannedWord("guild1", "spam")

	res := e.Evaluate("guild1", "spam")
	if !res.Matched {
		t.Fatal("Evaluate() should match")
	}
	if res.Action != ActionDelete {
		t.Errorf("Evaluate().Action = %s, want default %s", res.Action, ActionDelete)
	}
}

func TestEvaluateGuildIsolation(t *testing.T) {
	s := NewStore()
	e := NewFilterEngine(s)

	s.AddBannedWord("guild1", "spam")

	if res := e.Evaluate("guild2", "spam"); res.Matched {
		t.Error("Evaluate() should not match words configured in another guild")
	}
}
