package store

import (
	"context"

	"github.com/askohli/talkio-server/internal/core"
)

// RealtimeMessages adapts a MessageStore to the realtime core's
// durable-write contract. The id returned is the store-assigned one;
// the core never reconciles it with the realtime message id.
type RealtimeMessages struct {
	Store MessageStore
}

// Create durably writes one message and returns the store-assigned id.
func (r RealtimeMessages) Create(ctx context.Context, m core.PersistedMessage) (int64, error) {
	msg, err := r.Store.CreateMessage(ctx, m.ChatID, m.SenderID, m.Content)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}
