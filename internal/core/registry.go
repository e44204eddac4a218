package core

import "sync"

// Registry maps each user to their single live connection.
//
// Register is last-write-wins: a second connection for the same user
// replaces the first in the registry, stranding the old connection's
// reachability. Unregister is guarded by connection id so that a
// late cleanup from a replaced connection cannot delete the newer
// registration.
type Registry struct {
	mu     sync.RWMutex
	byUser map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{byUser: make(map[string]*Client)}
}

// Register stores the client as the live connection for its user,
// unconditionally overwriting any existing entry.
func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[c.UserID] = c
}

// Unregister removes the entry for userID only if connID still matches
// the stored connection. Returns true if an entry was removed.
func (r *Registry) Unregister(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byUser[userID]
	if !ok || c.ConnID != connID {
		return false
	}
	delete(r.byUser, userID)
	return true
}

// Resolve returns the live client for userID, if any.
func (r *Registry) Resolve(userID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byUser[userID]
	return c, ok
}

// Clients returns a snapshot of every registered client.
func (r *Registry) Clients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Client, 0, len(r.byUser))
	for _, c := range r.byUser {
		out = append(out, c)
	}
	return out
}

// Len reports how many users currently have a registered connection.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
