package core

import (
	"context"
	"sync"
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan Event, kind EventKind) Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return Event{}
}

func mustNoEvent(t *testing.T, ch <-chan Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got kind %v", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

// staticAuth admits any token present in its table.
type staticAuth struct {
	users map[string]Identity
}

func (a *staticAuth) Authenticate(_ context.Context, hs Handshake) (Identity, error) {
	id, ok := a.users[hs.Token]
	if !ok {
		return Identity{}, &AuthError{Reason: "unknown token"}
	}
	return id, nil
}

// recordingStore captures persisted messages and signals each create.
type recordingStore struct {
	mu      sync.Mutex
	created []PersistedMessage
	calls   chan struct{}
	fail    error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{calls: make(chan struct{}, 8)}
}

func (s *recordingStore) Create(_ context.Context, m PersistedMessage) (int64, error) {
	s.mu.Lock()
	s.created = append(s.created, m)
	n := int64(len(s.created))
	err := s.fail
	s.mu.Unlock()

	s.calls <- struct{}{}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *recordingStore) waitCreate(t *testing.T) PersistedMessage {
	t.Helper()

	select {
	case <-s.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a durable write attempt")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created[len(s.created)-1]
}

func newTestRouter(t *testing.T, store MessageStore, users map[string]Identity) *Router {
	t.Helper()

	r := NewRouter(&staticAuth{users: users}, store, nil)
	t.Cleanup(r.Close)
	return r
}

func mustAdmit(t *testing.T, r *Router, connID, token string) *Client {
	t.Helper()

	client, err := r.Admit(context.Background(), connID, Handshake{Token: token})
	if err != nil {
		t.Fatalf("admit %s: %v", connID, err)
	}
	return client
}
