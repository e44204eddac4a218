package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Event names are part of the wire contract and must match exactly
// for interoperability with existing clients.
const (
	ProtocolVersion = 1

	InboundTypeMessageSend   = "message-send"
	InboundTypeTypingStart   = "typing-start"
	InboundTypeTypingStop    = "typing-stop"
	InboundTypePresenceJoin  = "presence-join"
	InboundTypePresenceLeave = "presence-leave"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNewMessage      = "new-message"
	EventNewMessageAlert = "new-message-alert"
	EventTypingStart     = "typing-start"
	EventTypingStop      = "typing-stop"
	EventOnlineUsers     = "online-users"
)

// MessageSendData is a chat message from the client. Members is the
// full membership of the chat, supplied by the client.
type MessageSendData struct {
	ChatID  string   `json:"chatId"`
	Members []string `json:"members"`
	Message string   `json:"message"`
}

// TypingData starts or stops a typing indicator.
type TypingData struct {
	ChatID  string   `json:"chatId"`
	Members []string `json:"members"`
}

// PresenceData marks a user online or offline.
type PresenceData struct {
	UserID  string   `json:"userId"`
	Members []string `json:"members"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// MessageSender identifies who sent a message.
type MessageSender struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// RealtimeMessage is the broadcast form of a chat message. The id here
// is generated per send and is unrelated to the persisted message id.
type RealtimeMessage struct {
	ID        string        `json:"_id"`
	Content   string        `json:"content"`
	Sender    MessageSender `json:"sender"`
	Chat      string        `json:"chat"`
	CreatedAt string        `json:"createdAt"`
}

// NewMessageData is the payload of a new-message event.
type NewMessageData struct {
	ChatID  string          `json:"chatId"`
	Message RealtimeMessage `json:"message"`
}

// ChatAlertData carries only the chat id, for new-message-alert and
// typing events.
type ChatAlertData struct {
	ChatID string `json:"chatId"`
}

// OnlineUsersData is the full online snapshot, sent as a bare array
// of user ids.
type OnlineUsersData []string

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
