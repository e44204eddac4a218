package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Handshake carries the credentials presented when a connection is opened.
type Handshake struct {
	Token      string
	RemoteAddr string
}

// Identity is the authenticated principal behind a connection.
type Identity struct {
	UserID string
	Name   string
}

// Authenticator validates a connection handshake. It is invoked once
// per incoming connection, before any event is accepted, and is the
// only operation allowed to block before a connection is admitted.
type Authenticator interface {
	Authenticate(ctx context.Context, hs Handshake) (Identity, error)
}

// Router drives the per-connection state machine and dispatches
// inbound commands against the shared registry and presence set.
//
// Each Router is self-contained: NewRouter builds fresh registry and
// presence state, so tests get a clean slate per instance and the
// process gets exactly one for its lifetime.
type Router struct {
	auth     Authenticator
	registry *Registry
	presence *PresenceSet
	pipeline *MessagePipeline
	errs     chan error
	log      *zerolog.Logger
}

// NewRouter constructs a router with empty registry and presence state.
// The store may be nil, in which case sends are broadcast but never
// durably written.
func NewRouter(auth Authenticator, store MessageStore, logger *zerolog.Logger) *Router {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	errs := make(chan error, 16)
	return &Router{
		auth:     auth,
		registry: NewRegistry(),
		presence: NewPresenceSet(),
		pipeline: NewMessagePipeline(store, errs),
		errs:     errs,
		log:      logger,
	}
}

// Errs exposes durability failures from detached store writes. The
// process fault boundary is expected to drain it.
func (r *Router) Errs() <-chan error {
	return r.errs
}

// Registry exposes the connection registry, mainly for tests and
// introspection endpoints.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Presence exposes the presence set.
func (r *Router) Presence() *PresenceSet {
	return r.presence
}

// Admit runs the handshake through the authenticator and, on success,
// registers the connection and activates it. On failure the connection
// goes straight to its terminal state and no registry entry is created.
func (r *Router) Admit(ctx context.Context, connID string, hs Handshake) (*Client, error) {
	client := NewClient(connID)

	id, err := r.auth.Authenticate(ctx, hs)
	if err != nil {
		client.transition(StateClosed)
		r.log.Debug().Err(err).Str("conn_id", connID).Msg("handshake rejected")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			err = &AuthError{Reason: err.Error()}
		}
		return nil, err
	}

	client.UserID = id.UserID
	client.Name = id.Name
	client.transition(StateAuthenticated)

	r.registry.Register(client)
	client.transition(StateActive)

	r.log.Info().
		Str("conn_id", client.ConnID).
		Str("user_id", client.UserID).
		Msg("connection admitted")
	return client, nil
}

// Dispatch handles one inbound command for an active connection.
// Commands from the same connection arrive in order because the
// transport read loop calls Dispatch inline.
func (r *Router) Dispatch(ctx context.Context, client *Client, cmd Command) error {
	if client.State() != StateActive {
		return ErrConnectionClosed
	}

	switch cmd.Kind {
	case CommandMessageSend:
		r.pipeline.Ingest(r.registry, client, cmd.ChatID, cmd.Members, cmd.Content)
	case CommandTypingStart:
		r.relay(Event{Kind: EventTypingStart, ChatID: cmd.ChatID}, cmd.Members)
	case CommandTypingStop:
		r.relay(Event{Kind: EventTypingStop, ChatID: cmd.ChatID}, cmd.Members)
	case CommandPresenceJoin:
		r.presence.MarkOnline(cmd.UserID)
		r.relay(Event{Kind: EventOnlineUsers, Users: r.presence.Snapshot()}, cmd.Members)
	case CommandPresenceLeave:
		r.presence.MarkOffline(cmd.UserID)
		r.relay(Event{Kind: EventOnlineUsers, Users: r.presence.Snapshot()}, cmd.Members)
	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
	return nil
}

// Disconnect drives the transition to the terminal state: the user is
// unregistered (guarded by connection id), marked offline, and the
// updated online snapshot goes to every connected client. Global by
// design: at disconnect time the router does not know the membership
// of every chat the user was part of. Idempotent.
func (r *Router) Disconnect(client *Client) {
	if !client.transition(StateClosed) {
		return
	}

	r.registry.Unregister(client.UserID, client.ConnID)
	r.presence.MarkOffline(client.UserID)

	snapshot := r.presence.Snapshot()
	for _, c := range r.registry.Clients() {
		c.deliver(Event{Kind: EventOnlineUsers, Users: snapshot})
	}

	r.log.Info().
		Str("conn_id", client.ConnID).
		Str("user_id", client.UserID).
		Msg("connection closed")
}

// Close waits for in-flight durable writes to finish, then releases
// the error channel. Call only after every connection has been
// disconnected.
func (r *Router) Close() {
	r.pipeline.Wait()
	close(r.errs)
}

// relay resolves members through the registry and delivers ev to each
// live connection. Offline members are dropped silently.
func (r *Router) relay(ev Event, members []string) {
	for _, c := range r.registry.ResolveMembers(members) {
		c.deliver(ev)
	}
}
