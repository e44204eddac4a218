package core

import "testing"

func TestResolveMembersDropsOffline(t *testing.T) {
	reg := NewRegistry()

	for _, id := range []string{"a", "c"} {
		c := NewClient("conn-" + id)
		c.UserID = id
		reg.Register(c)
	}

	// Five members, two registered.
	targets := reg.ResolveMembers([]string{"a", "b", "c", "d", "e"})
	if len(targets) != 2 {
		t.Fatalf("expected 2 live connections, got %d", len(targets))
	}

	seen := make(map[string]bool)
	for _, c := range targets {
		seen[c.UserID] = true
	}
	if !seen["a"] || !seen["c"] {
		t.Fatalf("unexpected targets: %v", seen)
	}
}

func TestResolveMembersEmpty(t *testing.T) {
	reg := NewRegistry()
	if targets := reg.ResolveMembers(nil); len(targets) != 0 {
		t.Fatalf("expected no targets, got %d", len(targets))
	}
	if targets := reg.ResolveMembers([]string{"x", "y"}); len(targets) != 0 {
		t.Fatalf("expected no targets for offline members, got %d", len(targets))
	}
}
