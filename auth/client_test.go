package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientExchange(t *testing.T) {
	var captured struct {
		Path string
		Body map[string]string
		Ua   string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Ua = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&captured.Body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		resp := TokenResponse{
			AccessToken: "access",
			TokenType:   "Bearer",
			ExpiresAt:   time.Now().Add(15 * time.Minute).UTC(),
			ExpiresIn:   900,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	tokens, err := client.Exchange(context.Background(), ExchangeRequest{IdentityToken: "idtok-1"})
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if tokens.AccessToken != "access" || tokens.ExpiresIn != 900 {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
	if captured.Path != "/auth/token" {
		t.Fatalf("expected /auth/token, got %s", captured.Path)
	}
	if captured.Body["identity_token"] != "idtok-1" {
		t.Fatalf("unexpected payload: %+v", captured.Body)
	}
	if !strings.Contains(captured.Ua, "AgentDeskSDK") {
		t.Fatalf("expected default user agent, got %s", captured.Ua)
	}
}

func TestExchangeErrorPropagation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid identity token", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Exchange(context.Background(), ExchangeRequest{IdentityToken: "bad"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr Error
	if !(errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized) {
		t.Fatalf("expected Error, got %v", err)
	}
}

func TestExchangeRequiresIdentityToken(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Exchange(context.Background(), ExchangeRequest{}); err == nil {
		t.Fatalf("expected error for empty identity token")
	}
}
