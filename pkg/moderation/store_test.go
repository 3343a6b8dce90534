package moderation

import (
	"sync"
	"testing"
)

func TestAddWarning(t *testing.T) {
	s := NewStore()

	count := s.AddWarning("guild1", "user1", "spam", "mod1")
	if count != 1 {
		t.Errorf("AddWarning() count = %d, want 1", count)
	}

	count = s.AddWarning("guild1", "user1", "flood", "mod2")
	if count != 2 {
		t.Errorf("AddWarning() count = %d, want 2", count)
	}

	// Warnings are isolated per guild
	count = s.AddWarning("guild2", "user1", "spam", "mod1")
	if count != 1 {
		t.Errorf("AddWarning() in second guild count = %d, want 1", count)
	}
}

func TestWarnings(t *testing.T) {
	s := NewStore()

	if got := s.Warnings("guild1", "user1"); len(got) != 0 {
		t.Errorf("Warnings() for unknown user = %d entries, want 0", len(got))
	}

	s.AddWarning("guild1", "user1", "spam", "mod1")
	s.AddWarning("guild1", "user1", "flood", "mod2")

	warns := s.Warnings("guild1", "user1")
	if len(warns) != 2 {
		t.Fatalf("Warnings() = %d entries, want 2", len(warns))
	}

	// Oldest first
	if warns[0].Reason != "spam" || warns[1].Reason != "flood" {
		t.Errorf("Warnings() order = [%s, %s], want [spam, flood]", warns[0].Reason, warns[1].Reason)
	}

	if warns[0].ID == "" || warns[0].ID == warns[1].ID {
		t.Error("Warnings should have unique non-empty IDs")
	}

	// Returned slice is a copy
	warns[0].Reason = "mutated"
	if s.Warnings("guild1", "user1")[0].Reason != "spam" {
		t.Error("Warnings() should return a copy, not the internal slice")
	}
}

func TestClearWarnings(t *testing.T) {
	s := NewStore()

	if s.ClearWarnings("guild1", "user1") {
		t.Error("ClearWarnings() on empty history should return false")
	}

	s.AddWarning("guild1", "user1", "spam", "mod1")

	if !s.ClearWarnings("guild1", "user1") {
		t.Error("ClearWarnings() should return true when warnings existed")
	}

	if len(s.Warnings("guild1", "user1")) != 0 {
		t.Error("Warnings should be empty after ClearWarnings")
	}

	if s.AddWarning("guild1", "user1", "again", "mod1") != 1 {
		t.Error("warning count should restart at 1 after clearing")
	}
}

func TestAutoRoles(t *testing.T) {
	s := NewStore()

	if !s.AddAutoRole("guild1", "role1") {
		t.Error("AddAutoRole() first add should return true")
	}
	if s.AddAutoRole("guild1", "role1") {
		t.Error("AddAutoRole() duplicate should return false")
	}
	s.AddAutoRole("guild1", "role2")

	roles := s.AutoRoles("guild1")
	if len(roles) != 2 {
		t.Fatalf("AutoRoles() = %d entries, want 2", len(roles))
	}
	if roles[0] != "role1" || roles[1] != "role2" {
		t.Errorf("AutoRoles() = %v, want sorted [role1 role2]", roles)
	}

	if s.RemoveAutoRole("guild1", "role3") {
		t.Error("RemoveAutoRole() for absent role should return false")
	}
	if !s.RemoveAutoRole("guild1", "role1") {
		t.Error("RemoveAutoRole() should return true for present role")
	}

	if n := s.ClearAutoRoles("guild1"); n != 1 {
		t.Errorf("ClearAutoRoles() = %d, want 1", n)
	}
	if len(s.AutoRoles("guild1")) != 0 {
		t.Error("AutoRoles should be empty after clear")
	}
}

func TestBannedWords(t *testing.T) {
	s := NewStore()

	if !s.AddBannedWord("guild1", "SPAM") {
		t.Error("AddBannedWord() first add should return true")
	}
	// Stored lowercased, so the same word in other casing is a duplicate
	if s.AddBannedWord("guild1", "spam") {
		t.Error("AddBannedWord() duplicate (case-insensitive) should return false")
	}
	s.AddBannedWord("guild1", "estafa")

	words := s.BannedWords("guild1")
	if len(words) != 2 {
		t.Fatalf("BannedWords() = %d entries, want 2", len(words))
	}
	if words[0] != "estafa" || words[1] != "spam" {
		t.Errorf("BannedWords() = %v, want sorted [estafa spam]", words)
	}

	if !s.RemoveBannedWord("guild1", "SPAM") {
		t.Error("RemoveBannedWord() should match case-insensitively")
	}
	if s.RemoveBannedWord("guild1", "spam") {
		t.Error("RemoveBannedWord() for absent word should return false")
	}

	if n := s.ClearBannedWords("guild1"); n != 1 {
		t.Errorf("ClearBannedWords() = %d, want 1", n)
	}
}

func TestFilterConfig(t *testing.T) {
	s := NewStore()

	// Default action is delete-only before any configuration
	_, action := s.FilterConfig("guild1")
	if action != ActionDelete {
		t.Errorf("FilterConfig() default action = %s, want %s", action, ActionDelete)
	}

	s.SetFilterAction("guild1", ActionTimeout)
	words, action := s.FilterConfig("guild1")
	if action != ActionTimeout {
		t.Errorf("FilterConfig() action = %s, want %s", action, ActionTimeout)
	}
	if len(words) != 0 {
		t.Errorf("FilterConfig() words = %v, want empty", words)
	}
}

func TestParseFilterAction(t *testing.T) {
	tests := []struct {
		input string
		want  FilterAction
		ok    bool
	}{
		{"delete", ActionDelete, true},
		{"WARN", ActionWarn, true},
		{"Timeout", ActionTimeout, true},
		{"ban", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseFilterAction(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFilterAction(%q) = (%s, %v), want (%s, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLogChannel(t *testing.T) {
	s := NewStore()

	if _, ok := s.LogChannel("guild1"); ok {
		t.Error("LogChannel() should report no binding initially")
	}

	s.SetLogChannel("guild1", "chan1")
	s.SetLogChannel("guild1", "chan2") // overwrite

	ch, ok := s.LogChannel("guild1")
	if !ok || ch != "chan2" {
		t.Errorf("LogChannel() = (%s, %v), want (chan2, true)", ch, ok)
	}

	if !s.ClearLogChannel("guild1") {
		t.Error("ClearLogChannel() should return true for bound channel")
	}
	if s.ClearLogChannel("guild1") {
		t.Error("ClearLogChannel() second call should return false")
	}
}

func TestStats(t *testing.T) {
	s := NewStore()

	s.AddWarning("guild1", "user1", "spam", "mod1")
	s.AddWarning("guild1", "user2", "flood", "mod1")
	s.AddBannedWord("guild1", "spam")
	s.AddBannedWord("guild2", "estafa")

	guilds, warnings, words := s.Stats()
	if guilds != 2 {
		t.Errorf("Stats() guilds = %d, want 2", guilds)
	}
	if warnings != 2 {
		t.Errorf("Stats() warnings = %d, want 2", warnings)
	}
	if words != 2 {
		t.Errorf("Stats() bannedWords = %d, want 2", words)
	}
}

func TestConcurrentWarnings(t *testing.T) {
	s := NewStore()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			s.AddWarning("guild1", "user1", "spam", "mod1")
		}()
	}
	wg.Wait()

	if got := len(s.Warnings("guild1", "user1")); got != goroutines {
		t.Errorf("concurrent AddWarning total = %d, want %d", got, goroutines)
	}
}

func TestConcurrentGuildCreation(t *testing.T) {
	s := NewStore()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	// All goroutines touch the same fresh guild at once
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			s.AddBannedWord("guild1", "spam")
			s.AddAutoRole("guild1", "role1")
		}()
	}
	wg.Wait()

	if got := s.BannedWords("guild1"); len(got) != 1 {
		t.Errorf("BannedWords() after concurrent adds = %v, want single entry", got)
	}
	if got := s.AutoRoles("guild1"); len(got) != 1 {
		t.Errorf("AutoRoles() after concurrent adds = %v, want single entry", got)
	}
}
