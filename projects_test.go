package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestProjectArchivePatchesArchivedOnly(t *testing.T) {
	projectID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/projects/"+projectID.String() {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if len(body) != 1 || body["archived"] != true {
			t.Errorf("expected archived-only patch, got %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Project{ID: projectID, Name: "Onboarding", Archived: true})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, Config{AccessToken: "abc"})
	project, err := client.Projects.Archive(context.Background(), projectID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !project.Archived {
		t.Fatalf("unexpected project: %+v", project)
	}
}

func TestProjectCreateValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected network call for invalid request")
	}))
	defer srv.Close()

	client := newTestClient(t, srv, Config{AccessToken: "abc"})
	if _, err := client.Projects.Create(context.Background(), ProjectCreateRequest{Description: "no name"}); err == nil {
		t.Fatalf("expected validation error for missing name")
	}
}
