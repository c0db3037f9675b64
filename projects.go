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

// Project groups tasks and time entries inside an organization.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectCreateRequest creates a project. Name is required.
type ProjectCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Validate checks that required fields are set.
func (r ProjectCreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ProjectUpdateRequest patches a project. Nil fields are left unchanged.
type ProjectUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Archived    *bool   `json:"archived,omitempty"`
}

// ProjectsClient wraps the project endpoints.
type ProjectsClient struct {
	client *Client
}

// List returns all projects visible to the caller.
func (p *ProjectsClient) List(ctx context.Context) ([]Project, error) {
	if p == nil || p.client == nil {
		return nil, ConfigError{Reason: "projects client not initialized"}
	}
	var projects []Project
	if err := p.client.do(ctx, http.MethodGet, routes.Projects, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Get returns a single project by ID.
func (p *ProjectsClient) Get(ctx context.Context, id uuid.UUID) (Project, error) {
	if p == nil || p.client == nil {
		return Project{}, ConfigError{Reason: "projects client not initialized"}
	}
	if id == uuid.Nil {
		return Project{}, ConfigError{Reason: "project id is required"}
	}
	var project Project
	err := p.client.do(ctx, http.MethodGet, routes.Projects+"/"+id.String(), nil, &project)
	return project, err
}

// Create registers a new project.
func (p *ProjectsClient) Create(ctx context.Context, req ProjectCreateRequest) (Project, error) {
	if p == nil || p.client == nil {
		return Project{}, ConfigError{Reason: "projects client not initialized"}
	}
	if err := req.Validate(); err != nil {
		return Project{}, fmt.Errorf("sdk: %w", err)
	}
	var project Project
	err := p.client.do(ctx, http.MethodPost, routes.Projects, req, &project)
	return project, err
}

// Update patches an existing project.
func (p *ProjectsClient) Update(ctx context.Context, id uuid.UUID, req ProjectUpdateRequest) (Project, error) {
	if p == nil || p.client == nil {
		return Project{}, ConfigError{Reason: "projects client not initialized"}
	}
	if id == uuid.Nil {
		return Project{}, ConfigError{Reason: "project id is required"}
	}
	var project Project
	err := p.client.do(ctx, http.MethodPut, routes.Projects+"/"+id.String(), req, &project)
	return project, err
}

// Archive marks a project archived without deleting its history.
func (p *ProjectsClient) Archive(ctx context.Context, id uuid.UUID) (Project, error) {
	return p.Update(ctx, id, ProjectUpdateRequest{Archived: BoolPtr(true)})
}

// Delete permanently removes a project and its tasks.
func (p *ProjectsClient) Delete(ctx context.Context, id uuid.UUID) error {
	if p == nil || p.client == nil {
		return ConfigError{Reason: "projects client not initialized"}
	}
	if id == uuid.Nil {
		return ConfigError{Reason: "project id is required"}
	}
	return p.client.do(ctx, http.MethodDelete, routes.Projects+"/"+id.String(), nil, nil)
}
