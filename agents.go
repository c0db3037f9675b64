package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agentdesk-go/routes"
)

// AgentStatus is the lifecycle state of an AI agent.
type AgentStatus string

const (
	AgentStatusDraft  AgentStatus = "draft"
	AgentStatusActive AgentStatus = "active"
	AgentStatusPaused AgentStatus = "paused"
)

// Agent is a configured AI agent owned by the user's organization.
type Agent struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Model        string      `json:"model"`
	SystemPrompt string      `json:"system_prompt,omitempty"`
	Status       AgentStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// AgentCreateRequest creates a new agent. Name and Model are required.
type AgentCreateRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

// Validate checks that required fields are set.
func (r AgentCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Model) == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}

// AgentUpdateRequest patches an agent. Nil fields are left unchanged.
type AgentUpdateRequest struct {
	Name         *string      `json:"name,omitempty"`
	Model        *string      `json:"model,omitempty"`
	SystemPrompt *string      `json:"system_prompt,omitempty"`
	Status       *AgentStatus `json:"status,omitempty"`
}

// AgentsClient wraps the agent endpoints.
type AgentsClient struct {
	client *Client
}

// List returns all agents visible to the caller.
func (a *AgentsClient) List(ctx context.Context) ([]Agent, error) {
	if a == nil || a.client == nil {
		return nil, ConfigError{Reason: "agents client not initialized"}
	}
	var agents []Agent
	if err := a.client.do(ctx, http.MethodGet, routes.Agents, nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// Get returns a single agent by ID.
func (a *AgentsClient) Get(ctx context.Context, id uuid.UUID) (Agent, error) {
	if a == nil || a.client == nil {
		return Agent{}, ConfigError{Reason: "agents client not initialized"}
	}
	if id == uuid.Nil {
		return Agent{}, ConfigError{Reason: "agent id is required"}
	}
	var agent Agent
	err := a.client.do(ctx, http.MethodGet, routes.Agents+"/"+id.String(), nil, &agent)
	return agent, err
}

// Create registers a new agent.
func (a *AgentsClient) Create(ctx context.Context, req AgentCreateRequest) (Agent, error) {
	if a == nil || a.client == nil {
		return Agent{}, ConfigError{Reason: "agents client not initialized"}
	}
	if err := req.Validate(); err != nil {
		return Agent{}, fmt.Errorf("sdk: %w", err)
	}
	var agent Agent
	err := a.client.do(ctx, http.MethodPost, routes.Agents, req, &agent)
	return agent, err
}

// Update patches an existing agent.
func (a *AgentsClient) Update(ctx context.Context, id uuid.UUID, req AgentUpdateRequest) (Agent, error) {
	if a == nil || a.client == nil {
		return Agent{}, ConfigError{Reason: "agents client not initialized"}
	}
	if id == uuid.Nil {
		return Agent{}, ConfigError{Reason: "agent id is required"}
	}
	var agent Agent
	err := a.client.do(ctx, http.MethodPut, routes.Agents+"/"+id.String(), req, &agent)
	return agent, err
}

// Delete removes an agent and its integrations.
func (a *AgentsClient) Delete(ctx context.Context, id uuid.UUID) error {
	if a == nil || a.client == nil {
		return ConfigError{Reason: "agents client not initialized"}
	}
	if id == uuid.Nil {
		return ConfigError{Reason: "agent id is required"}
	}
	return a.client.do(ctx, http.MethodDelete, routes.Agents+"/"+id.String(), nil, nil)
}
