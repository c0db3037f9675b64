package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agentdesk-go/routes"
)

// TaskStatus is the board column a task sits in.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Task is a unit of work inside a project.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskCreateRequest creates a task inside a project.
type TaskCreateRequest struct {
	ProjectID   uuid.UUID  `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Validate checks that required fields are set.
func (r TaskCreateRequest) Validate() error {
	if r.ProjectID == uuid.Nil {
		return fmt.Errorf("project_id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// TaskUpdateRequest patches a task. Nil fields are left unchanged.
type TaskUpdateRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	AssigneeID  *uuid.UUID  `json:"assignee_id,omitempty"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
}

// TaskListFilter narrows List results. Zero values are not applied.
type TaskListFilter struct {
	ProjectID uuid.UUID
	Status    TaskStatus
}

func (f TaskListFilter) query() string {
	values := url.Values{}
	if f.ProjectID != uuid.Nil {
		values.Set("project_id", f.ProjectID.String())
	}
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// TasksClient wraps the task endpoints.
type TasksClient struct {
	client *Client
}

// List returns tasks matching the filter.
func (t *TasksClient) List(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	if t == nil || t.client == nil {
		return nil, ConfigError{Reason: "tasks client not initialized"}
	}
	if filter.Status != "" && !filter.Status.valid() {
		return nil, ConfigError{Reason: fmt.Sprintf("unknown task status %q", string(filter.Status))}
	}
	var tasks []Task
	if err := t.client.do(ctx, http.MethodGet, routes.Tasks+filter.query(), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get returns a single task by ID.
func (t *TasksClient) Get(ctx context.Context, id uuid.UUID) (Task, error) {
	if t == nil || t.client == nil {
		return Task{}, ConfigError{Reason: "tasks client not initialized"}
	}
	if id == uuid.Nil {
		return Task{}, ConfigError{Reason: "task id is required"}
	}
	var task Task
	err := t.client.do(ctx, http.MethodGet, routes.Tasks+"/"+id.String(), nil, &task)
	return task, err
}

// Create adds a task to a project.
func (t *TasksClient) Create(ctx context.Context, req TaskCreateRequest) (Task, error) {
	if t == nil || t.client == nil {
		return Task{}, ConfigError{Reason: "tasks client not initialized"}
	}
	if err := req.Validate(); err != nil {
		return Task{}, fmt.Errorf("sdk: %w", err)
	}
	var task Task
	err := t.client.do(ctx, http.MethodPost, routes.Tasks, req, &task)
	return task, err
}

// Update patches an existing task.
func (t *TasksClient) Update(ctx context.Context, id uuid.UUID, req TaskUpdateRequest) (Task, error) {
	if t == nil || t.client == nil {
		return Task{}, ConfigError{Reason: "tasks client not initialized"}
	}
	if id == uuid.Nil {
		return Task{}, ConfigError{Reason: "task id is required"}
	}
	if req.Status != nil && !req.Status.valid() {
		return Task{}, ConfigError{Reason: fmt.Sprintf("unknown task status %q", string(*req.Status))}
	}
	var task Task
	err := t.client.do(ctx, http.MethodPut, routes.Tasks+"/"+id.String(), req, &task)
	return task, err
}

// Move is a convenience wrapper that updates only the task status.
func (t *TasksClient) Move(ctx context.Context, id uuid.UUID, status TaskStatus) (Task, error) {
	return t.Update(ctx, id, TaskUpdateRequest{Status: &status})
}

// Delete removes a task and its time entries.
func (t *TasksClient) Delete(ctx context.Context, id uuid.UUID) error {
	if t == nil || t.client == nil {
		return ConfigError{Reason: "tasks client not initialized"}
	}
	if id == uuid.Nil {
		return ConfigError{Reason: "task id is required"}
	}
	return t.client.do(ctx, http.MethodDelete, routes.Tasks+"/"+id.String(), nil, nil)
}
