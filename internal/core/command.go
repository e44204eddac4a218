package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandMessageSend delivers a chat message to chat members and
	// queues it for the durable store.
	CommandMessageSend CommandKind = iota
	// CommandTypingStart relays a typing indicator.
	CommandTypingStart
	// CommandTypingStop clears a typing indicator.
	CommandTypingStop
	// CommandPresenceJoin marks a user online and broadcasts the snapshot.
	CommandPresenceJoin
	// CommandPresenceLeave marks a user offline and broadcasts the snapshot.
	CommandPresenceLeave
)

// Command represents an action requested by a client. Members is the
// externally supplied membership list for the chat; the core treats it
// as authoritative and never caches or validates it.
type Command struct {
	Kind    CommandKind
	ChatID  string
	Members []string
	Content string
	UserID  string // subject of presence commands
}
