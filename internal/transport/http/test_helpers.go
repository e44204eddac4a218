package http

import (
	"context"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/askohli/talkio-server/internal/auth"
	"github.com/askohli/talkio-server/internal/config"
	"github.com/askohli/talkio-server/internal/core"
	"github.com/askohli/talkio-server/internal/store"
	"github.com/askohli/talkio-server/internal/store/sqlite"
	"github.com/rs/zerolog"
)

// createTestStore creates an in-memory SQLite store with schema applied.
func createTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// createTestAuthService creates an auth service for testing.
func createTestAuthService(t *testing.T, st store.Store, jwtSecret string) *auth.Service {
	t.Helper()

	jwtConfig := &auth.JWTConfig{
		Secret:   []byte(jwtSecret),
		Issuer:   "test",
		Audience: "test",
		TTL:      24 * time.Hour,
	}

	return auth.NewService(st, jwtConfig)
}

// startTestServer wires a full server around an in-memory store.
func startTestServer(t *testing.T) (*httptest.Server, *auth.Service, *core.Router) {
	t.Helper()

	st := createTestStore(t)
	authService := createTestAuthService(t, st, "test-secret")

	disabledLogger := zerolog.Nop()
	router := core.NewRouter(auth.NewConnAuthenticator(authService), store.RealtimeMessages{Store: st}, &disabledLogger)
	t.Cleanup(router.Close)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second

	server := NewServer(router, authService, &cfg, &disabledLogger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, authService, router
}

// registerTestUser registers a user and returns their token and realtime id.
func registerTestUser(t *testing.T, authService *auth.Service, username string) (token, userID string) {
	t.Helper()

	token, err := authService.Register(context.Background(), username, "password123")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}

	claims, err := authService.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token for %s: %v", username, err)
	}

	return token, strconv.FormatInt(claims.UserID, 10)
}
