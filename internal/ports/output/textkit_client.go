package output

import (
	"context"

	"textkit-client/internal/domain"
)

// TextkitClient interface - Output port
// Defines what the session needs from the remote text service. Each method
// performs exactly one HTTP exchange and touches no session state.
// A non-success status is returned as *domain.HTTPError, a failure before a
// status is obtained as *domain.TransportError, and an undecodable success
// body as an error wrapping domain.ErrMalformedResponse.
type TextkitClient interface {
	// Transform sends text to the endpoint of kind. The bearer token is
	// attached only when token is non-empty.
	Transform(ctx context.Context, kind domain.TransformKind, text, token string) (*domain.TransformResponse, error)

	// Signup registers a new account. The response body is not consumed.
	Signup(ctx context.Context, credentials domain.Credentials) error

	// Login exchanges credentials, sent form-encoded, for a bearer token.
	Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResponse, error)

	// ListHistory returns the full history of the token's user. An empty
	// history is a success.
	ListHistory(ctx context.Context, token string) ([]domain.HistoryItem, error)

	// DeleteHistoryItem removes one history record.
	DeleteHistoryItem(ctx context.Context, token string, id int64) error

	// ClearHistory removes every history record of the token's user.
	ClearHistory(ctx context.Context, token string) error
}
