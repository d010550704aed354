package memory

import (
	"context"
	"sync"

	"textkit-client/internal/domain"
	"textkit-client/internal/ports/output"
)

// Compile-time check to ensure MemoryTokenStore implements TokenStore interface
var _ output.TokenStore = (*MemoryTokenStore)(nil)

// MemoryTokenStore struct - Output adapter for in-memory token storage.
// Uses sync.Map for thread-safe concurrent access. Nothing survives a restart.
type MemoryTokenStore struct {
	entries sync.Map
}

// NewMemoryTokenStore creates a new empty in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// LoadToken returns the stored token, or "" when none is stored.
func (m *MemoryTokenStore) LoadToken(ctx context.Context) (string, error) {
	value, exists := m.entries.Load(domain.TokenStorageKey)
	if !exists {
		return "", nil
	}

	token, ok := value.(string)
	if !ok {
		// If data is malformed, delete and return empty
		m.entries.Delete(domain.TokenStorageKey)
		return "", nil
	}

	return token, nil
}

// SaveToken stores token under the well-known key, replacing any previous one.
func (m *MemoryTokenStore) SaveToken(ctx context.Context, token string) error {
	m.entries.Store(domain.TokenStorageKey, token)
	return nil
}

// ClearToken removes the stored token.
// This operation is idempotent - clearing an empty store does not return an error.
func (m *MemoryTokenStore) ClearToken(ctx context.Context) error {
	m.entries.Delete(domain.TokenStorageKey)
	return nil
}
