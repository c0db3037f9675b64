package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/agentdesk/agentdesk-go/routes"
)

// TimeEntry records minutes worked against a task.
type TimeEntry struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
	Minutes   int       `json:"minutes"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TimeEntryCreateRequest logs time against a task.
type TimeEntryCreateRequest struct {
	TaskID    uuid.UUID `json:"task_id"`
	StartedAt time.Time `json:"started_at"`
	Minutes   int       `json:"minutes"`
	Note      string    `json:"note,omitempty"`
}

// Validate checks that required fields are set.
func (r TimeEntryCreateRequest) Validate() error {
	if r.TaskID == uuid.Nil {
		return fmt.Errorf("task_id is required")
	}
	if r.StartedAt.IsZero() {
		return fmt.Errorf("started_at is required")
	}
	if r.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}
	return nil
}

// TimeEntryListFilter narrows List results. Zero values are not applied.
type TimeEntryListFilter struct {
	TaskID uuid.UUID
	From   time.Time
	To     time.Time
}

func (f TimeEntryListFilter) query() string {
	values := url.Values{}
	if f.TaskID != uuid.Nil {
		values.Set("task_id", f.TaskID.String())
	}
	if !f.From.IsZero() {
		values.Set("from", f.From.UTC().Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		values.Set("to", f.To.UTC().Format(time.RFC3339))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// TimeEntriesClient wraps the time-entry endpoints.
type TimeEntriesClient struct {
	client *Client
}

// List returns time entries matching the filter.
func (t *TimeEntriesClient) List(ctx context.Context, filter TimeEntryListFilter) ([]TimeEntry, error) {
	if t == nil || t.client == nil {
		return nil, ConfigError{Reason: "time entries client not initialized"}
	}
	var entries []TimeEntry
	if err := t.client.do(ctx, http.MethodGet, routes.TimeEntries+filter.query(), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Create logs a new time entry.
func (t *TimeEntriesClient) Create(ctx context.Context, req TimeEntryCreateRequest) (TimeEntry, error) {
	if t == nil || t.client == nil {
		return TimeEntry{}, ConfigError{Reason: "time entries client not initialized"}
	}
	if err := req.Validate(); err != nil {
		return TimeEntry{}, fmt.Errorf("sdk: %w", err)
	}
	var entry TimeEntry
	err := t.client.do(ctx, http.MethodPost, routes.TimeEntries, req, &entry)
	return entry, err
}

// Delete removes a logged time entry.
func (t *TimeEntriesClient) Delete(ctx context.Context, id uuid.UUID) error {
	if t == nil || t.client == nil {
		return ConfigError{Reason: "time entries client not initialized"}
	}
	if id == uuid.Nil {
		return ConfigError{Reason: "time entry id is required"}
	}
	return t.client.do(ctx, http.MethodDelete, routes.TimeEntries+"/"+id.String(), nil, nil)
}
