package auth

import (
	"context"
	"strconv"

	"github.com/askohli/talkio-server/internal/core"
)

// ConnAuthenticator adapts token validation to the realtime handshake
// contract. It is invoked once per incoming websocket connection,
// before any event is accepted.
type ConnAuthenticator struct {
	svc *Service
}

// NewConnAuthenticator wraps the auth service for connection handshakes.
func NewConnAuthenticator(svc *Service) *ConnAuthenticator {
	return &ConnAuthenticator{svc: svc}
}

// Authenticate validates the handshake token and returns the identity
// behind the connection.
func (a *ConnAuthenticator) Authenticate(_ context.Context, hs core.Handshake) (core.Identity, error) {
	if hs.Token == "" {
		return core.Identity{}, &core.AuthError{Reason: "missing token"}
	}

	claims, err := a.svc.ValidateToken(hs.Token)
	if err != nil {
		return core.Identity{}, &core.AuthError{Reason: "invalid token"}
	}

	return core.Identity{
		UserID: strconv.FormatInt(claims.UserID, 10),
		Name:   claims.Username,
	}, nil
}
