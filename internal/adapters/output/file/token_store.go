package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"textkit-client/internal/domain"
	"textkit-client/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure FileTokenStore implements TokenStore interface
var _ output.TokenStore = (*FileTokenStore)(nil)

// FileTokenStore struct - Output adapter persisting the token in a small JSON
// document of key/value entries, the way a browser keeps local storage.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

// NewFileTokenStore creates a store backed by the JSON file at path.
// The file is created on first save.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		return nil, errors.New("file token store: empty path")
	}
	return &FileTokenStore{path: path}, nil
}

// LoadToken returns the stored token, or "" when none is stored.
func (s *FileTokenStore) LoadToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return "", err
	}
	return entries[domain.TokenStorageKey], nil
}

// SaveToken stores token, replacing any previous one.
func (s *FileTokenStore) SaveToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[domain.TokenStorageKey] = token
	return s.write(entries)
}

// ClearToken removes the stored token. Clearing an empty store is not an error.
func (s *FileTokenStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[domain.TokenStorageKey]; !ok {
		return nil
	}
	delete(entries, domain.TokenStorageKey)
	return s.write(entries)
}

// read requires s.mu
func (s *FileTokenStore) read() (map[string]string, error) {
	entries := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt file is treated as empty and overwritten on next save
		logrus.Warnf("Ignoring unreadable token file %s: %v", s.path, err)
		return make(map[string]string), nil
	}
	return entries, nil
}

// write requires s.mu
func (s *FileTokenStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write token file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close token file: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
