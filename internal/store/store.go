package store

import (
	"context"
	"time"
)

// User represents a user in the system.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsGuest      bool
	SessionID    string // For guest user session tracking
	CreatedAt    time.Time
}

// Message represents a persisted chat message. The id is assigned by
// the store and is independent of any realtime message id.
type Message struct {
	ID        int64
	ChatID    string
	SenderID  string
	Body      string
	CreatedAt time.Time
}

// UserStore provides user persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	CreateGuestUser(ctx context.Context, sessionID string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// MessageStore provides message persistence operations.
type MessageStore interface {
	CreateMessage(ctx context.Context, chatID, senderID, body string) (*Message, error)
	ListMessagesByChat(ctx context.Context, chatID string, limit int) ([]Message, error)
}

// Store combines all persistence operations.
type Store interface {
	UserStore
	MessageStore
	Close() error
}
