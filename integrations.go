package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agentdesk-go/routes"
)

// Platform identifies the external messaging surface an agent is wired to.
type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	PlatformEmail    Platform = "email"
	PlatformWeb      Platform = "web"
)

func (p Platform) valid() bool {
	switch p {
	case PlatformWhatsApp, PlatformTelegram, PlatformEmail, PlatformWeb:
		return true
	default:
		return false
	}
}

// IntegrationStatus is the connection state reported by the backend.
type IntegrationStatus string

const (
	IntegrationStatusPending   IntegrationStatus = "pending"
	IntegrationStatusConnected IntegrationStatus = "connected"
	IntegrationStatusError     IntegrationStatus = "error"
)

// Integration connects an agent to an external messaging platform.
// Platform credentials in Config are write-only: the backend returns them
// redacted.
type Integration struct {
	ID        uuid.UUID         `json:"id"`
	AgentID   uuid.UUID         `json:"agent_id"`
	Platform  Platform          `json:"platform"`
	Name      string            `json:"name,omitempty"`
	Status    IntegrationStatus `json:"status"`
	Config    map[string]string `json:"config,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// IntegrationCreateRequest connects an agent to a platform.
type IntegrationCreateRequest struct {
	AgentID  uuid.UUID         `json:"agent_id"`
	Platform Platform          `json:"platform"`
	Name     string            `json:"name,omitempty"`
	Config   map[string]string `json:"config,omitempty"`
}

// Validate checks that required fields are set.
func (r IntegrationCreateRequest) Validate() error {
	if r.AgentID == uuid.Nil {
		return fmt.Errorf("agent_id is required")
	}
	if !r.Platform.valid() {
		return fmt.Errorf("platform must be one of whatsapp, telegram, email, web")
	}
	return nil
}

// IntegrationUpdateRequest patches an integration. Nil fields are left unchanged.
type IntegrationUpdateRequest struct {
	Name   *string           `json:"name,omitempty"`
	Config map[string]string `json:"config,omitempty"`
}

// VerifyResult is the outcome of a backend-side connectivity check.
type VerifyResult struct {
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// IntegrationsClient wraps the integration endpoints.
type IntegrationsClient struct {
	client *Client
}

// List returns integrations, optionally filtered to one agent.
func (i *IntegrationsClient) List(ctx context.Context, agentID *uuid.UUID) ([]Integration, error) {
	if i == nil || i.client == nil {
		return nil, ConfigError{Reason: "integrations client not initialized"}
	}
	path := routes.Integrations
	if agentID != nil && *agentID != uuid.Nil {
		path += "?agent_id=" + agentID.String()
	}
	var integrations []Integration
	if err := i.client.do(ctx, http.MethodGet, path, nil, &integrations); err != nil {
		return nil, err
	}
	return integrations, nil
}

// Get returns a single integration by ID.
func (i *IntegrationsClient) Get(ctx context.Context, id uuid.UUID) (Integration, error) {
	if i == nil || i.client == nil {
		return Integration{}, ConfigError{Reason: "integrations client not initialized"}
	}
	if id == uuid.Nil {
		return Integration{}, ConfigError{Reason: "integration id is required"}
	}
	var integration Integration
	err := i.client.do(ctx, http.MethodGet, routes.Integrations+"/"+id.String(), nil, &integration)
	return integration, err
}

// Create connects an agent to an external platform.
func (i *IntegrationsClient) Create(ctx context.Context, req IntegrationCreateRequest) (Integration, error) {
	if i == nil || i.client == nil {
		return Integration{}, ConfigError{Reason: "integrations client not initialized"}
	}
	if err := req.Validate(); err != nil {
		return Integration{}, fmt.Errorf("sdk: %w", err)
	}
	var integration Integration
	err := i.client.do(ctx, http.MethodPost, routes.Integrations, req, &integration)
	return integration, err
}

// Update patches an existing integration.
func (i *IntegrationsClient) Update(ctx context.Context, id uuid.UUID, req IntegrationUpdateRequest) (Integration, error) {
	if i == nil || i.client == nil {
		return Integration{}, ConfigError{Reason: "integrations client not initialized"}
	}
	if id == uuid.Nil {
		return Integration{}, ConfigError{Reason: "integration id is required"}
	}
	var integration Integration
	err := i.client.do(ctx, http.MethodPut, routes.Integrations+"/"+id.String(), req, &integration)
	return integration, err
}

// Delete disconnects and removes an integration.
func (i *IntegrationsClient) Delete(ctx context.Context, id uuid.UUID) error {
	if i == nil || i.client == nil {
		return ConfigError{Reason: "integrations client not initialized"}
	}
	if id == uuid.Nil {
		return ConfigError{Reason: "integration id is required"}
	}
	return i.client.do(ctx, http.MethodDelete, routes.Integrations+"/"+id.String(), nil, nil)
}

// Verify asks the backend to check the integration's platform connectivity.
func (i *IntegrationsClient) Verify(ctx context.Context, id uuid.UUID) (VerifyResult, error) {
	if i == nil || i.client == nil {
		return VerifyResult{}, ConfigError{Reason: "integrations client not initialized"}
	}
	if id == uuid.Nil {
		return VerifyResult{}, ConfigError{Reason: "integration id is required"}
	}
	var result VerifyResult
	err := i.client.do(ctx, http.MethodPost, routes.Integrations+"/"+id.String()+"/verify", nil, &result)
	return result, err
}
