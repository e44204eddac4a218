package core

import "context"

// Sender summarizes who produced a message.
type Sender struct {
	ID   string
	Name string
}

// RealtimeMessage is the transient broadcast form of a chat message.
// Its ID is generated fresh per send and is independent of the id the
// durable store assigns to the same logical message; the two id spaces
// are never reconciled.
type RealtimeMessage struct {
	ID        string
	Content   string
	Sender    Sender
	ChatID    string
	CreatedAt string // RFC 3339, set at send time
}

// PersistedMessage is the durable form handed to the message store.
type PersistedMessage struct {
	ChatID   string
	SenderID string
	Content  string
}

// MessageStore is the external system of record for chat messages.
// Create returns the store-assigned identifier.
type MessageStore interface {
	Create(ctx context.Context, m PersistedMessage) (int64, error)
}
