package moderation

import (
	"sync"
	"time"
)

type banKey struct {
	guildID string
	userID  string
}

// BanScheduler tracks pending temporary ban expirations. Each (guild, member)
// pair holds at most one pending unban; scheduling again replaces the
// previous timer. Timers are volatile and do not survive a restart.
type BanScheduler struct {
	mu     sync.Mutex
	timers map[banKey]*time.Timer
}

// NewBanScheduler creates an empty scheduler
func NewBanScheduler() *BanScheduler {
	return &BanScheduler{
		timers: make(map[banKey]*time.Timer),
	}
}

// Schedule arranges for fn to run after d. A previous pending expiration
// for the same member is cancelled and replaced.
func (b *BanScheduler) Schedule(guildID, userID string, d time.Duration, fn func()) {
	key := banKey{guildID: guildID, userID: userID}

	b.mu.Lock()
	defer b.mu.Unlock()

	if prev, ok := b.timers[key]; ok {
		prev.Stop()
	}

	var tm *time.Timer
	tm = time.AfterFunc(d, func() {
		b.mu.Lock()
		current, ok := b.timers[key]
		if !ok || current != tm {
			// Replaced or cancelled after firing was queued
			b.mu.Unlock()
			return
		}
		delete(b.timers, key)
		b.mu.Unlock()

		fn()
	})
	b.timers[key] = tm
}

// Cancel drops the pending expiration for a member, if one exists.
// Used when a moderator unbans manually before the timer fires.
func (b *BanScheduler) Cancel(guildID, userID string) bool {
	key := banKey{guildID: guildID, userID: userID}

	b.mu.Lock()
	defer b.mu.Unlock()

	tm, ok := b.timers[key]
	if !ok {
		return false
	}
	tm.Stop()
	delete(b.timers, key)
	return true
}

// Pending returns how many expirations are currently scheduled
func (b *BanScheduler) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.timers)
}

// Stop cancels every pending timer. Called on shutdown.
func (b *BanScheduler) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, tm := range b.timers {
		tm.Stop()
		delete(b.timers, key)
	}
}
