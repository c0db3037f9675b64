// Package auth provides the low-level token-exchange client for the
// AgentDesk SDK.
package auth

import "github.com/golang-jwt/jwt/v5"

// Claims encodes JWT claims embedded into access tokens.
//
// This is a DTO matching the server's access token contract. The SDK keeps
// this struct local to avoid importing server modules.
type Claims struct {
	UserID         string `json:"uid"`
	SessionID      string `json:"sid"`
	OrganizationID string `json:"org,omitempty"`
	Email          string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// ParseUnverified decodes the claims of an access token without verifying
// its signature. It exists for client-side display (who am I signed in as),
// never for authorization decisions or expiry tracking.
func ParseUnverified(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
