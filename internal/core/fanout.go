package core

// ResolveMembers turns a chat membership list into the subset of live
// connections to target. Members with no registered connection are
// silently dropped; delivery to offline members is not queued. Output
// order is not guaranteed to match input order.
func (r *Registry) ResolveMembers(members []string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Client, 0, len(members))
	for _, userID := range members {
		if c, ok := r.byUser[userID]; ok {
			out = append(out, c)
		}
	}
	return out
}
