package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

func encodeSegment(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func TestParseUnverified(t *testing.T) {
	header := encodeSegment(t, map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := encodeSegment(t, map[string]string{
		"uid":   "user-1",
		"sid":   "sess-1",
		"org":   "org-1",
		"email": "me@example.com",
	})
	token := header + "." + payload + ".sig"

	claims, err := ParseUnverified(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.SessionID != "sess-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.OrganizationID != "org-1" || claims.Email != "me@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseUnverifiedRejectsGarbage(t *testing.T) {
	if _, err := ParseUnverified("not-a-jwt"); err == nil {
		t.Fatalf("expected error")
	}
}
