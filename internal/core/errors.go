package core

import (
	"errors"
	"fmt"
)

// Error codes surfaced to clients over the wire.
const (
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeBadRequest   = "bad_request"
	ErrCodeRateLimited  = "rate_limited"
)

// ErrConnectionClosed is returned by Dispatch once a connection has
// reached its terminal state.
var ErrConnectionClosed = errors.New("connection closed")

// AuthError rejects a connection handshake. No state is mutated for
// the failed connection.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// StoreError reports a durability failure for a message whose realtime
// broadcast already happened. The broadcast is never retracted; the
// error is fatal for that send only.
type StoreError struct {
	ChatID   string
	SenderID string
	Err      error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("persist message chat=%s sender=%s: %v", e.ChatID, e.SenderID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
