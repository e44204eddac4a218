package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventNewMessage carries the realtime form of a chat message.
	EventNewMessage EventKind = iota
	// EventNewMessageAlert is the lightweight unread-badge signal that
	// follows every message broadcast.
	EventNewMessageAlert
	// EventTypingStart relays a typing indicator to chat members.
	EventTypingStart
	// EventTypingStop clears a typing indicator.
	EventTypingStop
	// EventOnlineUsers carries the full online snapshot.
	EventOnlineUsers
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	ChatID  string
	Message *RealtimeMessage // non-nil for EventNewMessage
	Users   []string         // non-nil for EventOnlineUsers
}
