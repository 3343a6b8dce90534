// Package moderation provides the in-memory per-guild moderation state:
// warnings, auto-roles, banned words and log channel bindings.
// All state is volatile and lives for the lifetime of the process.
package moderation

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FilterAction is the configured response when banned content is detected
type FilterAction string

const (
	ActionDelete  FilterAction = "delete"
	ActionWarn    FilterAction = "warn"
	ActionTimeout FilterAction = "timeout"
)

// ParseFilterAction validates a user-supplied action string
func ParseFilterAction(s string) (FilterAction, bool) {
	switch FilterAction(strings.ToLower(s)) {
	case ActionDelete:
		return ActionDelete, true
	case ActionWarn:
		return ActionWarn, true
	case ActionTimeout:
		return ActionTimeout, true
	}
	return "", false
}

// Warning representa una advertencia individual
type Warning struct {
	ID        string    `json:"id"`
	Reason    string    `json:"reason"`
	Moderator string    `json:"moderator"`
	Timestamp time.Time `json:"timestamp"`
}

// guildState holds every moderation setting for a single guild.
// Its mutex serializes all read-modify-write sequences for that guild.
type guildState struct {
	mu           sync.Mutex
	warnings     map[string][]Warning
	autoRoles    map[string]struct{}
	bannedWords  map[string]struct{}
	filterAction FilterAction // empty until explicitly configured
	logChannel   string
}

// Store owns the per-guild moderation state. Operations never fail hard:
// absent or duplicate entries are reported through boolean results and the
// per-guild entry is created on first touch.
type Store struct {
	mu     sync.RWMutex
	guilds map[string]*guildState
}

// NewStore creates an empty moderation store
func NewStore() *Store {
	return &Store{
		guilds: make(map[string]*guildState),
	}
}

// guild returns the state for a guild, creating it on first touch
func (s *Store) guild(guildID string) *guildState {
	s.mu.RLock()
	g, ok := s.guilds[guildID]
	s.mu.RUnlock()
	if ok {
		return g
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.guilds[guildID]; ok {
		return g
	}

	g = &guildState{
		warnings:    make(map[string][]Warning),
		autoRoles:   make(map[string]struct{}),
		bannedWords: make(map[string]struct{}),
	}
	s.guilds[guildID] = g
	return g
}

// Warnings

// AddWarning appends a warning for a member and returns the new total
func (s *Store) AddWarning(guildID, userID, reason, moderatorID string) int {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	g.warnings[userID] = append(g.warnings[userID], Warning{
		ID:        uuid.New().String(),
		Reason:    reason,
		Moderator: moderatorID,
		Timestamp: time.Now().UTC(),
	})
	return len(g.warnings[userID])
}

// Warnings returns a copy of a member's warning history, oldest first
func (s *Store) Warnings(guildID, userID string) []Warning {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	list := g.warnings[userID]
	out := make([]Warning, len(list))
	copy(out, list)
	return out
}

// ClearWarnings removes every warning for a member and reports whether any existed
func (s *Store) ClearWarnings(guildID, userID string) bool {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.warnings[userID]) == 0 {
		return false
	}
	delete(g.warnings, userID)
	return true
}

// Auto-roles

// AddAutoRole registers a role to assign on member join.
// Returns false if the role was already registered.
func (s *Store) AddAutoRole(guildID, roleID string) bool {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.autoRoles[roleID]; exists {
		return false
	}
	g.autoRoles[roleID] = struct{}{}
	return true
}

// RemoveAutoRole unregisters a role. Returns false if it was not registered.
func (s *Store) RemoveAutoRole(guildID, roleID string) bool {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.autoRoles[roleID]; !exists {
		return false
	}
	delete(g.autoRoles, roleID)
	return true
}

// AutoRoles returns the configured auto-roles sorted by id
func (s *Store) AutoRoles(guildID string) []string {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, len(g.autoRoles))
	for id := range g.autoRoles {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ClearAutoRoles removes every auto-role and returns how many were removed
func (s *Store) ClearAutoRoles(guildID string) int {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.autoRoles)
	g.autoRoles = make(map[string]struct{})
	return n
}

// Banned words

// AddBannedWord adds a lowercased word fragment to the guild filter.
// Returns false if the word was already present.
func (s *Store) AddBannedWord(guildID, word string) bool {
	word = strings.ToLower(word)
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.bannedWords[word]; exists {
		return false
	}
	g.bannedWords[word] = struct{}{}
	return true
}

// RemoveBannedWord removes a word fragment. Returns false if it was absent.
func (s *Store) RemoveBannedWord(guildID, word string) bool {
	word = strings.ToLower(word)
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.bannedWords[word]; !exists {
		return false
	}
	delete(g.bannedWords, word)
	return true
}

// BannedWords returns the configured word fragments sorted alphabetically
func (s *Store) BannedWords(guildID string) []string {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, len(g.bannedWords))
	for w := range g.bannedWords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// ClearBannedWords removes every banned word and returns how many were removed
func (s *Store) ClearBannedWords(guildID string) int {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.bannedWords)
	g.bannedWords = make(map[string]struct{})
	return n
}

// SetFilterAction configures the response taken on a filter match
func (s *Store) SetFilterAction(guildID string, action FilterAction) {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	g.filterAction = action
}

// FilterConfig returns the banned words and the effective action.
// Words may be configured before an action is chosen; in that case the
// action falls back to delete-only.
func (s *Store) FilterConfig(guildID string) ([]string, FilterAction) {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	words := make([]string, 0, len(g.bannedWords))
	for w := range g.bannedWords {
		words = append(words, w)
	}
	sort.Strings(words)

	action := g.filterAction
	if action == "" {
		action = ActionDelete
	}
	return words, action
}

// Log channel

// SetLogChannel binds the guild's logging channel, overwriting any previous one
func (s *Store) SetLogChannel(guildID, channelID string) {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	g.logChannel = channelID
}

// LogChannel returns the bound logging channel, if any
func (s *Store) LogChannel(guildID string) (string, bool) {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logChannel == "" {
		return "", false
	}
	return g.logChannel, true
}

// ClearLogChannel removes the binding and reports whether one existed
func (s *Store) ClearLogChannel(guildID string) bool {
	g := s.guild(guildID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logChannel == "" {
		return false
	}
	g.logChannel = ""
	return true
}

// Stats returns aggregate counters for the status API
func (s *Store) Stats() (guilds, warnings, bannedWords int) {
	s.mu.RLock()
	states := make([]*guildState, 0, len(s.guilds))
	for _, g := range s.guilds {
		states = append(states, g)
	}
	s.mu.RUnlock()

	guilds = len(states)
	for _, g := range states {
		g.mu.Lock()
		for _, list := range g.warnings {
			warnings += len(list)
		}
		bannedWords += len(g.bannedWords)
		g.mu.Unlock()
	}
	return guilds, warnings, bannedWords
}
