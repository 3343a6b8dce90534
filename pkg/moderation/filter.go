package moderation

import "strings"

// MatchResult describes the outcome of evaluating a message
type MatchResult struct {
	Matched bool
	Words   []string
	Action  FilterAction
}

// FilterEngine evaluates message content against a guild's banned words.
// Matching is plain case-insensitive substring search: a banned fragment
// matches anywhere in the content, including inside longer words.
type FilterEngine struct {
	store *Store
}

// NewFilterEngine creates a filter engine backed by the given store
func NewFilterEngine(store *Store) *FilterEngine {
	return &FilterEngine{store: store}
}

// Evaluate checks content against the guild's banned words and returns
// every matching fragment along with the configured action. The filter
// never mutates state; callers apply the action.
func (e *FilterEngine) Evaluate(guildID, content string) MatchResult {
	words, action := e.store.FilterConfig(guildID)
	if len(words) == 0 {
		return MatchResult{}
	}

	lowered := strings.ToLower(content)
	var matched []string
	for _, w := range words {
		if strings.Contains(lowered, w) {
			matched = append(matched, w)
		}
	}

	if len(matched) == 0 {
		return MatchResult{}
	}
	return MatchResult{Matched: true, Words: matched, Action: action}
}
