package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentdesk", "credentials.json")
	store, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if tok, err := store.Load(); err != nil || tok != "" {
		t.Fatalf("expected empty load from missing file, got %q, %v", tok, err)
	}
	if err := store.Save("abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if tok, err := store.Load(); err != nil || tok != "abc" {
		t.Fatalf("expected %q, got %q, %v", "abc", tok, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tok, err := store.Load(); err != nil || tok != "" {
		t.Fatalf("expected empty load after clear, got %q, %v", tok, err)
	}
	// Clearing twice is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestNewClientSeedsTokenFromPersistedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	first, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := first.Save("abc"); err != nil {
		t.Fatalf("save: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("expected persisted token attached, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Agent{})
	}))
	defer srv.Close()

	// A fresh store instance over the same file simulates a new page load.
	second, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	client := newTestClient(t, srv, Config{TokenStore: second})
	if got := client.Auth.AccessToken(); got != "abc" {
		t.Fatalf("expected seeded token without re-login, got %q", got)
	}
	if _, err := client.Agents.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestFileTokenStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := NewFileTokenStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected decode error for corrupt file")
	}
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("expected empty, got %q", tok)
	}
	_ = store.Save("tok")
	if tok, _ := store.Load(); tok != "tok" {
		t.Fatalf("expected %q, got %q", "tok", tok)
	}
	_ = store.Clear()
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("expected empty after clear, got %q", tok)
	}
}
