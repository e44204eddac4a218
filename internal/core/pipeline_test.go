package core

import (
	"errors"
	"testing"
	"time"
)

func TestPipelineBroadcastPrecedesDurability(t *testing.T) {
	st := newRecordingStore()
	errs := make(chan error, 1)
	p := NewMessagePipeline(st, errs)
	p.newID = func() string { return "rt-1" }
	p.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	reg := NewRegistry()
	sender := NewClient("conn-a")
	sender.UserID = "A"
	sender.Name = "alice"
	reg.Register(sender)

	p.Ingest(reg, sender, "c1", []string{"A"}, "hello")

	// Both events are already in the sender's channel before the store
	// acknowledges anything.
	msgEv := mustEvent(t, sender.Events, EventNewMessage)
	if msgEv.Message.ID != "rt-1" {
		t.Fatalf("unexpected realtime id: %q", msgEv.Message.ID)
	}
	if msgEv.Message.CreatedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp: %q", msgEv.Message.CreatedAt)
	}
	mustEvent(t, sender.Events, EventNewMessageAlert)

	st.waitCreate(t)
}

func TestPipelineStoreFailureSurfacesOnErrorChannel(t *testing.T) {
	st := newRecordingStore()
	st.fail = errors.New("disk full")
	errs := make(chan error, 1)
	p := NewMessagePipeline(st, errs)

	reg := NewRegistry()
	sender := NewClient("conn-a")
	sender.UserID = "A"
	reg.Register(sender)

	p.Ingest(reg, sender, "c1", []string{"A"}, "hello")

	// The broadcast already happened and is not retracted.
	mustEvent(t, sender.Events, EventNewMessage)
	mustEvent(t, sender.Events, EventNewMessageAlert)

	select {
	case err := <-errs:
		var storeErr *StoreError
		if !errors.As(err, &storeErr) {
			t.Fatalf("expected StoreError, got %v", err)
		}
		if storeErr.ChatID != "c1" || storeErr.SenderID != "A" {
			t.Fatalf("unexpected store error fields: %+v", storeErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("store failure never reached the error channel")
	}
}

func TestPipelineNilStoreSkipsDurability(t *testing.T) {
	errs := make(chan error, 1)
	p := NewMessagePipeline(nil, errs)

	reg := NewRegistry()
	sender := NewClient("conn-a")
	sender.UserID = "A"
	reg.Register(sender)

	p.Ingest(reg, sender, "c1", []string{"A"}, "hello")

	mustEvent(t, sender.Events, EventNewMessage)
	select {
	case err := <-errs:
		t.Fatalf("unexpected error with nil store: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPipelineRealtimeIDIndependentOfStoreID(t *testing.T) {
	st := newRecordingStore()
	errs := make(chan error, 1)
	p := NewMessagePipeline(st, errs)

	reg := NewRegistry()
	sender := NewClient("conn-a")
	sender.UserID = "A"
	reg.Register(sender)

	p.Ingest(reg, sender, "c1", []string{"A"}, "first")
	first := mustEvent(t, sender.Events, EventNewMessage)
	st.waitCreate(t)

	p.Ingest(reg, sender, "c1", []string{"A"}, "second")
	mustEvent(t, sender.Events, EventNewMessageAlert)
	second := mustEvent(t, sender.Events, EventNewMessage)
	st.waitCreate(t)

	if first.Message.ID == second.Message.ID {
		t.Fatalf("realtime ids must be unique per send, both %q", first.Message.ID)
	}
}
