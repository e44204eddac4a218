package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeAuthResponse(t *testing.T, resp *http.Response) AuthResponse {
	t.Helper()

	var out AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	return out
}

func TestRegisterLoginFlow(t *testing.T) {
	ts, _, _ := startTestServer(t)

	resp := postJSON(t, ts.URL+"/api/register", RegisterRequest{Username: "alice", Password: "password123"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}
	if tok := decodeAuthResponse(t, resp); tok.Token == "" {
		t.Fatal("expected token from register")
	}

	// Duplicate registration conflicts.
	resp = postJSON(t, ts.URL+"/api/register", RegisterRequest{Username: "alice", Password: "password123"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/login", LoginRequest{Username: "alice", Password: "password123"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/login", LoginRequest{Username: "alice", Password: "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", resp.StatusCode)
	}
}

func TestGuestLogin(t *testing.T) {
	ts, _, _ := startTestServer(t)

	resp := postJSON(t, ts.URL+"/api/guest", struct{}{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guest status = %d, want 200", resp.StatusCode)
	}
	if tok := decodeAuthResponse(t, resp); tok.Token == "" {
		t.Fatal("expected token from guest login")
	}
}

func TestMeRequiresAuth(t *testing.T) {
	ts, authService, _ := startTestServer(t)

	resp, err := http.Get(ts.URL + "/api/me")
	if err != nil {
		t.Fatalf("get me: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated me status = %d, want 401", resp.StatusCode)
	}

	token, _ := registerTestUser(t, authService, "alice")

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/me", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do me request: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("authenticated me status = %d, want 200", resp2.StatusCode)
	}

	var me MeResponse
	if err := json.NewDecoder(resp2.Body).Decode(&me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.Username != "alice" || me.IsGuest {
		t.Fatalf("unexpected me response: %+v", me)
	}
}
