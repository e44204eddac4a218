package sqlite

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == 0 || user.Username != "alice" || user.IsGuest {
		t.Fatalf("unexpected user: %+v", user)
	}

	byName, err := s.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, byName.ID)
	}

	if _, err := s.GetUserByUsername(ctx, "nobody"); err == nil {
		t.Fatal("expected error for unknown username")
	}
}

func TestGuestUserExcludedFromUsernameLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	guest, err := s.CreateGuestUser(ctx, "session0123456789")
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}
	if !guest.IsGuest || guest.SessionID != "session0123456789" {
		t.Fatalf("unexpected guest user: %+v", guest)
	}

	if _, err := s.GetUserByUsername(ctx, guest.Username); err == nil {
		t.Fatal("guest users must not resolve via username lookup")
	}
}

func TestCreateMessageAssignsID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	msg, err := s.CreateMessage(ctx, "c1", "42", "hello")
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected store-assigned id")
	}
	if msg.ChatID != "c1" || msg.SenderID != "42" || msg.Body != "hello" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.CreatedAt.IsZero() {
		t.Fatal("expected store-assigned timestamp")
	}
}

func TestListMessagesByChat(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, body := range []string{"one", "two", "three"} {
		if _, err := s.CreateMessage(ctx, "c1", "42", body); err != nil {
			t.Fatalf("create message %q: %v", body, err)
		}
	}
	if _, err := s.CreateMessage(ctx, "c2", "42", "other chat"); err != nil {
		t.Fatalf("create message: %v", err)
	}

	msgs, err := s.ListMessagesByChat(ctx, "c1", 10)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	// Newest first.
	if msgs[0].Body != "three" {
		t.Fatalf("expected newest first, got %q", msgs[0].Body)
	}

	limited, err := s.ListMessagesByChat(ctx, "c1", 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(limited))
	}
}
