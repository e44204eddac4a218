package core

import (
	"sort"
	"sync"
)

// PresenceSet tracks which users are currently considered online.
// Membership is independent of the connection registry: a user can be
// marked online without a registered connection and vice versa. Not
// persisted; rebuilt from empty on process restart.
type PresenceSet struct {
	mu     sync.RWMutex
	online map[string]struct{}
}

// NewPresenceSet constructs an empty presence set.
func NewPresenceSet() *PresenceSet {
	return &PresenceSet{online: make(map[string]struct{})}
}

// MarkOnline adds userID to the set. Idempotent.
func (p *PresenceSet) MarkOnline(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online[userID] = struct{}{}
}

// MarkOffline removes userID from the set. No-op if absent.
func (p *PresenceSet) MarkOffline(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.online, userID)
}

// Snapshot returns the online user ids, sorted and without duplicates.
func (p *PresenceSet) Snapshot() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.online))
	for userID := range p.online {
		out = append(out, userID)
	}
	sort.Strings(out)
	return out
}
