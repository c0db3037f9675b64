package sdk

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/agentdesk/agentdesk-go/routes"
)

// User is the authenticated dashboard user's profile.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name,omitempty"`
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
}

// AuthClient wraps session and authentication endpoints.
type AuthClient struct {
	client *Client
}

// SignIn mints an identity token for the current provider session and
// exchanges it for a backend access token, seeding the client's session
// credential and its persisted mirror.
func (a *AuthClient) SignIn(ctx context.Context) error {
	if a == nil || a.client == nil {
		return ConfigError{Reason: "auth client not initialized"}
	}
	_, err := a.client.session.refresh(ctx, a.client.session.current())
	return err
}

// AccessToken returns the current session credential, or "" when anonymous.
func (a *AuthClient) AccessToken() string {
	if a == nil || a.client == nil {
		return ""
	}
	return a.client.session.current()
}

// Me returns the profile of the authenticated user.
func (a *AuthClient) Me(ctx context.Context) (User, error) {
	var user User
	if a == nil || a.client == nil {
		return user, ConfigError{Reason: "auth client not initialized"}
	}
	err := a.client.do(ctx, http.MethodGet, routes.AuthMe, nil, &user)
	return user, err
}

// Logout revokes the session server-side (best effort) and clears the local
// credential and its persisted mirror. It never fails: a dead backend must
// not keep a user signed in locally.
func (a *AuthClient) Logout(ctx context.Context) error {
	if a == nil || a.client == nil {
		return ConfigError{Reason: "auth client not initialized"}
	}
	token := a.client.session.current()
	if token != "" {
		// Revocation must not trigger a refresh; hit the endpoint directly.
		resp, err := a.client.roundTrip(ctx, http.MethodPost, routes.AuthLogout, nil, token, callOptions{})
		if err == nil {
			drainAndClose(resp.Body)
		}
	}
	a.client.session.clear(ctx)
	return nil
}
