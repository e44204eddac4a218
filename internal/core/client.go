package core

import (
	"sync"
	"time"
)

// ConnState is the lifecycle state of a single transport connection.
type ConnState int

const (
	// StateConnecting means the connection exists but has not been authenticated.
	StateConnecting ConnState = iota
	// StateAuthenticated means credentials were validated; registration is pending.
	StateAuthenticated
	// StateActive means the connection is registered and accepts events.
	StateActive
	// StateClosed is terminal; no further events are processed.
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticated:
		return "authenticated"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Client is one live transport session as seen by the core layer.
// The router owns the client for its lifetime; transport code only
// reads from Events and feeds inbound traffic back through Dispatch.
type Client struct {
	ConnID    string
	UserID    string
	Name      string
	Events    chan Event
	CreatedAt time.Time

	mu    sync.Mutex
	state ConnState
}

// NewClient constructs an unauthenticated client with an initialized event channel.
func NewClient(connID string) *Client {
	return &Client{
		ConnID:    connID,
		Events:    make(chan Event, 16),
		CreatedAt: time.Now(),
		state:     StateConnecting,
	}
}

// State returns the current lifecycle state.
func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// transition moves the client to next and reports whether the move happened.
// Closed is terminal: once there, every further transition is refused.
func (c *Client) transition(next ConnState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateClosed {
		return false
	}
	c.state = next
	return true
}

// deliver hands an event to the client without blocking.
func (c *Client) deliver(ev Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}
