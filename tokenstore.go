package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists the current access token across client instances.
// It is a write-through mirror of the client's in-memory credential, not a
// second owner: the client reads it once at construction and writes it on
// every refresh, logout, and unrecoverable failure.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

type storedCredential struct {
	AccessToken string `json:"access_token"`
}

// FileTokenStore keeps the access token in a single JSON file with 0600
// permissions, the embedder-side analog of the dashboard's browser keystore.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore returns a store backed by the given file path.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		return nil, ConfigError{Reason: "token store path required"}
	}
	return &FileTokenStore{path: path}, nil
}

// Load implements TokenStore.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("sdk: read token store: %w", err)
	}
	var cred storedCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return "", fmt.Errorf("sdk: decode token store: %w", err)
	}
	return cred.AccessToken, nil
}

// Save implements TokenStore.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("sdk: create token store dir: %w", err)
	}
	data, err := json.Marshal(storedCredential{AccessToken: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("sdk: write token store: %w", err)
	}
	return nil
}

// Clear implements TokenStore.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sdk: clear token store: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process TokenStore for tests and embedders that
// manage persistence themselves.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load implements TokenStore.
func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save implements TokenStore.
func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear implements TokenStore.
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
