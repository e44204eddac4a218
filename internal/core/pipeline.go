package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MessagePipeline turns an inbound chat message into a realtime
// broadcast plus a detached durable write.
//
// The broadcast is optimistic: recipients observe the message before
// durability is confirmed, and a later store failure never retracts
// it. Failures surface on the error channel as *StoreError.
type MessagePipeline struct {
	store    MessageStore
	errs     chan<- error
	inFlight sync.WaitGroup

	// Overridable in tests for deterministic payloads.
	newID func() string
	now   func() time.Time
}

// NewMessagePipeline constructs a pipeline reporting store failures to errs.
func NewMessagePipeline(store MessageStore, errs chan<- error) *MessagePipeline {
	return &MessagePipeline{
		store: store,
		errs:  errs,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Ingest builds the realtime payload, fans it out to the resolved
// members followed by the new-message alert, then hands the durable
// write to a detached goroutine. The write never blocks the broadcast
// path, and its failure delays only this send's error visibility.
func (p *MessagePipeline) Ingest(reg *Registry, sender *Client, chatID string, members []string, content string) {
	msg := &RealtimeMessage{
		ID:      p.newID(),
		Content: content,
		Sender: Sender{
			ID:   sender.UserID,
			Name: sender.Name,
		},
		ChatID:    chatID,
		CreatedAt: p.now().UTC().Format(time.RFC3339),
	}

	targets := reg.ResolveMembers(members)
	for _, c := range targets {
		c.deliver(Event{Kind: EventNewMessage, ChatID: chatID, Message: msg})
	}
	for _, c := range targets {
		c.deliver(Event{Kind: EventNewMessageAlert, ChatID: chatID})
	}

	p.inFlight.Add(1)
	go p.persist(PersistedMessage{
		ChatID:   chatID,
		SenderID: sender.UserID,
		Content:  content,
	})
}

// Wait blocks until every detached durable write has finished. The
// error channel must stay open until Wait returns.
func (p *MessagePipeline) Wait() {
	p.inFlight.Wait()
}

func (p *MessagePipeline) persist(m PersistedMessage) {
	defer p.inFlight.Done()
	if p.store == nil {
		return
	}
	if _, err := p.store.Create(context.Background(), m); err != nil {
		select {
		case p.errs <- &StoreError{ChatID: m.ChatID, SenderID: m.SenderID, Err: err}:
		default:
			// Fault boundary is not draining; do not block the writer.
		}
	}
}
