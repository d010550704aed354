package output

import "context"

// TokenStore interface - Output port
// Persists the session token across restarts under a single well-known key.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	// LoadToken returns the persisted token, or "" when none is stored.
	LoadToken(ctx context.Context) (string, error)

	// SaveToken stores token, replacing any previous one.
	SaveToken(ctx context.Context, token string) error

	// ClearToken removes the stored token. Clearing an empty store is not an error.
	ClearToken(ctx context.Context) error
}
