package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"textkit-client/internal/domain"
	"textkit-client/internal/ports/output"
)

// Compile-time check to ensure SQLiteTokenStore implements TokenStore interface
var _ output.TokenStore = (*SQLiteTokenStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS session_tokens (
	key TEXT PRIMARY KEY,
	token TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteTokenStore struct - Output adapter persisting the token in a local sqlite file
type SQLiteTokenStore struct {
	db *sql.DB
}

// NewSQLiteTokenStore func - Creates the store and its table
func NewSQLiteTokenStore(db *sql.DB) (*SQLiteTokenStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &SQLiteTokenStore{db: db}, nil
}

// LoadToken returns the stored token, or "" when none is stored.
func (s *SQLiteTokenStore) LoadToken(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM session_tokens WHERE key = ?`, domain.TokenStorageKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("sqlite load token: %w", err)
	}
	return token, nil
}

// SaveToken upserts the token row.
func (s *SQLiteTokenStore) SaveToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_tokens (key, token, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		domain.TokenStorageKey, token, domain.FormatTimestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("sqlite save token: %w", err)
	}
	return nil
}

// ClearToken deletes the token row. Deleting a missing row is not an error.
func (s *SQLiteTokenStore) ClearToken(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_tokens WHERE key = ?`, domain.TokenStorageKey); err != nil {
		return fmt.Errorf("sqlite clear token: %w", err)
	}
	return nil
}
