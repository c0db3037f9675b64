package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

func newTestClient(t *testing.T, srv *httptest.Server, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = srv.URL
	cfg.HTTPClient = srv.Client()
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var calls atomic.Int64
	agentID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Fatalf("expected Authorization header got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Agent{{ID: agentID, Name: "Bot", Status: AgentStatusActive}})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, Config{AccessToken: "abc"})
	agents, err := client.Agents.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 1 || agents[0].ID != agentID || agents[0].Name != "Bot" {
		t.Fatalf("unexpected agents: %+v", agents)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 network call, got %d", got)
	}
}

func TestAnonymousRequestOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.Header["Authorization"]; present {
			t.Fatalf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Agent{})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, Config{})
	if _, err := client.Agents.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestBearerPrefixStripped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer my-secret-token" {
			t.Fatalf("expected single Bearer prefix, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Agent{})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, Config{AccessToken: "Bearer my-secret-token"})
	if _, err := client.Agents.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestNewClientBaseURLValidation(t *testing.T) {
	cases := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"empty environment default", "", false},
		{"valid", "https://api.example.com/api/v1", false},
		{"trailing slash", "https://api.example.com/api/v1/", false},
		{"missing scheme", "api.example.com", true},
		{"missing host", "https://", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(Config{BaseURL: tc.baseURL})
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.baseURL)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.baseURL, err)
			}
		})
	}
}

func TestRequestOptionsApplyHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-AgentDesk-Request-Id"); got != "req-42" {
			t.Fatalf("expected request id header, got %q", got)
		}
		if got := r.Header.Get("X-Extra"); got != "yes" {
			t.Fatalf("expected extra header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, Config{AccessToken: "abc"})
	var out map[string]string
	err := client.Do(context.Background(), http.MethodGet, "/agents", nil, &out,
		WithRequestID("req-42"), WithHeader("X-Extra", "yes"))
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if out["ok"] != "true" {
		t.Fatalf("unexpected body: %+v", out)
	}
}
