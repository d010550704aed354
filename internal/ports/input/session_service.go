package input

import (
	"context"

	"textkit-client/internal/domain"
)

// SessionService interface - Input port (use case)
// Defines the intents a UI can issue against the client session
type SessionService interface {
	// Restore loads the persisted token, if any, into the session
	Restore(ctx context.Context) error

	// RunAction transforms text with kind. Outcome is recorded in the session state.
	RunAction(ctx context.Context, kind domain.TransformKind, text string)

	// AuthSignup registers and then logs in with the same credentials
	AuthSignup(ctx context.Context, username, password string) error

	// AuthLogin logs in and refreshes the history
	AuthLogin(ctx context.Context, username, password string) error

	// Logout forgets the token and the history without a network call
	Logout(ctx context.Context)

	// LoadHistory re-fetches the full history. Outcome is recorded in the session state.
	LoadHistory(ctx context.Context)

	// RemoveHistory deletes one item then re-fetches the history
	RemoveHistory(ctx context.Context, id int64) error

	// ClearAllHistory deletes every item then re-fetches the history
	ClearAllHistory(ctx context.Context) error

	// State returns a snapshot of the session
	State() domain.SessionState
}
