// Package tickets implements the support ticket system: an in-memory
// registry of ticket channels and the create/claim/close workflow driven
// by message components. State is volatile and lost on restart.
package tickets

import (
	"sort"
	"sync"
	"time"
)

// Status is the lifecycle state of a ticket channel
type Status string

const (
	StatusOpenUnclaimed Status = "open_unclaimed"
	StatusOpenClaimed   Status = "open_claimed"
	StatusClosed        Status = "closed"
)

// Ticket is the record tracked for one ticket channel. Values returned by
// the registry are snapshots; mutating them does not affect stored state.
type Ticket struct {
	GuildID   string    `json:"guildId"`
	ChannelID string    `json:"channelId"`
	Number    int       `json:"number"`
	Owner     string    `json:"owner"`
	Claimer   string    `json:"claimer,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	ClosedAt  time.Time `json:"closedAt,omitempty"`
	ClosedBy  string    `json:"closedBy,omitempty"`
}

// Registry owns ticket records keyed by channel id and the per-guild
// ticket counters. A single mutex guards everything; claim and close are
// single-writer-wins under concurrent invocation.
type Registry struct {
	mu       sync.Mutex
	tickets  map[string]*Ticket
	counters map[string]int
}

// NewRegistry creates an empty ticket registry
func NewRegistry() *Registry {
	return &Registry{
		tickets:  make(map[string]*Ticket),
		counters: make(map[string]int),
	}
}

// NextNumber allocates the next ticket number for a guild. Numbers start
// at 1, are strictly increasing and never reused, even after tickets are
// closed or their channels deleted.
func (r *Registry) NextNumber(guildID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[guildID]++
	return r.counters[guildID]
}

// Create inserts a new unclaimed record for a freshly created channel
func (r *Registry) Create(guildID, channelID, ownerID string, number int) Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := &Ticket{
		GuildID:   guildID,
		ChannelID: channelID,
		Number:    number,
		Owner:     ownerID,
		Status:    StatusOpenUnclaimed,
		CreatedAt: time.Now().UTC(),
	}
	r.tickets[channelID] = t
	return *t
}

// Claim assigns the ticket to claimerID. First claim wins: returns true
// only for the call that performed the claim; later calls (or claims on
// closed/unknown channels) return false and leave the record unchanged.
func (r *Registry) Claim(channelID, claimerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[channelID]
	if !ok || t.Status != StatusOpenUnclaimed {
		return false
	}
	t.Claimer = claimerID
	t.Status = StatusOpenClaimed
	return true
}

// Close transitions an open ticket to closed and returns the closed
// snapshot. Closing an already-closed or unknown channel is a no-op
// returning ok=false; status and claimer are never changed after close.
func (r *Registry) Close(channelID, closedBy string) (Ticket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[channelID]
	if !ok || t.Status == StatusClosed {
		return Ticket{}, false
	}
	t.Status = StatusClosed
	t.ClosedAt = time.Now().UTC()
	t.ClosedBy = closedBy
	return *t, true
}

// Get returns a snapshot of the ticket for a channel, if tracked
func (r *Registry) Get(channelID string) (Ticket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[channelID]
	if !ok {
		return Ticket{}, false
	}
	return *t, true
}

// Remove drops the record for a deleted channel regardless of state.
// Returns false if the channel was not tracked.
func (r *Registry) Remove(channelID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[channelID]; !ok {
		return false
	}
	delete(r.tickets, channelID)
	return true
}

// ListByStatus returns the guild's tickets in the given state, ordered by
// ticket number
func (r *Registry) ListByStatus(guildID string, status Status) []Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Ticket
	for _, t := range r.tickets {
		if t.GuildID == guildID && t.Status == status {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Counts returns per-state totals for a guild
func (r *Registry) Counts(guildID string) (unclaimed, claimed, closed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tickets {
		if t.GuildID != guildID {
			continue
		}
		switch t.Status {
		case StatusOpenUnclaimed:
			unclaimed++
		case StatusOpenClaimed:
			claimed++
		case StatusClosed:
			closed++
		}
	}
	return unclaimed, claimed, closed
}

// Stats returns global totals for the status API
func (r *Registry) Stats() (open, closed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tickets {
		if t.Status == StatusClosed {
			closed++
		} else {
			open++
		}
	}
	return open, closed
}
