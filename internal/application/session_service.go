package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"textkit-client/internal/domain"
	"textkit-client/internal/ports/input"
	"textkit-client/internal/ports/output"
	"textkit-client/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure SessionService implements input.SessionService
var _ input.SessionService = (*SessionService)(nil)

// SessionService struct - Application service owning the client session state.
// The mutex is never held across a call to the text service or the token store.
type SessionService struct {
	client    output.TextkitClient
	tokens    output.TokenStore
	validator validator.Validator

	mu    sync.Mutex
	state domain.SessionState

	// A response is applied only while its epoch is still the current one
	actionEpoch  uint64
	historyEpoch uint64
}

// NewSessionService func - Creates new session service with an anonymous session
func NewSessionService(client output.TextkitClient, tokens output.TokenStore) *SessionService {
	return &SessionService{
		client:    client,
		tokens:    tokens,
		validator: validator.New(),
		state:     domain.NewSessionState(),
	}
}

// Restore func - Use case: Read the persisted token into the session
func (s *SessionService) Restore(ctx context.Context) error {
	token, err := s.tokens.LoadToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session token: %w", err)
	}

	s.mu.Lock()
	s.state.Token = token
	s.mu.Unlock()

	if token != "" {
		logrus.Info("Restored persisted session token")
	}

	return nil
}

// State func - Returns a snapshot of the session
func (s *SessionService) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// RunAction func - Use case: Run one transformation and record its outcome
func (s *SessionService) RunAction(ctx context.Context, kind domain.TransformKind, text string) {
	s.mu.Lock()
	s.actionEpoch++
	epoch := s.actionEpoch
	s.state.ErrorMessage = nil
	s.state.Result = nil
	loading := kind
	s.state.Loading = &loading
	token := s.state.Token
	s.mu.Unlock()

	defer s.finishAction(epoch)

	if strings.TrimSpace(text) == "" {
		s.failAction(epoch, domain.NewValidationError(domain.MsgEmptyText))
		return
	}

	if !kind.Valid() {
		s.failAction(epoch, domain.NewValidationError(domain.MsgUnknownTransform))
		return
	}

	resp, err := s.client.Transform(ctx, kind, text, token)
	if err != nil {
		logrus.Errorf("Transformation %s failed: %v", kind, err)
		s.failAction(epoch, err)
		return
	}

	s.mu.Lock()
	if epoch == s.actionEpoch {
		result := resp.Result
		s.state.Result = &result
	} else {
		logrus.Debugf("Discarding stale %s result", kind)
	}
	authenticated := s.state.Token != ""
	s.mu.Unlock()

	// A stale result was still recorded by the service
	if authenticated {
		s.LoadHistory(ctx)
	}
}

func (s *SessionService) failAction(epoch uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.actionEpoch {
		logrus.Debugf("Discarding stale transformation error: %v", err)
		return
	}
	s.setError(domain.ErrorMessage(err, domain.MsgRequestFailed))
}

func (s *SessionService) finishAction(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch == s.actionEpoch {
		s.state.Loading = nil
	}
}

// AuthSignup func - Use case: Register an account and log straight into it
func (s *SessionService) AuthSignup(ctx context.Context, username, password string) error {
	credentials, err := s.credentials(username, password)
	if err != nil {
		return err
	}

	if err := s.client.Signup(ctx, credentials); err != nil {
		logrus.Errorf("Signup failed for user %s: %v", username, err)
		s.recordError(err)
		return err
	}

	return s.AuthLogin(ctx, username, password)
}

// AuthLogin func - Use case: Exchange credentials for a token and load history
func (s *SessionService) AuthLogin(ctx context.Context, username, password string) error {
	credentials, err := s.credentials(username, password)
	if err != nil {
		return err
	}

	resp, err := s.client.Login(ctx, credentials)
	if err != nil {
		logrus.Errorf("Login failed for user %s: %v", username, err)
		s.recordError(err)
		return err
	}

	s.mu.Lock()
	s.state.Token = resp.AccessToken
	s.historyEpoch++
	s.state.HistoryLoading = false
	s.mu.Unlock()

	if err := s.tokens.SaveToken(ctx, resp.AccessToken); err != nil {
		logrus.Warnf("Failed to persist session token: %v", err)
	}

	s.LoadHistory(ctx)

	return nil
}

// credentials clears the error field and rejects empty fields before any network call
func (s *SessionService) credentials(username, password string) (domain.Credentials, error) {
	s.mu.Lock()
	s.state.ErrorMessage = nil
	s.mu.Unlock()

	credentials := domain.Credentials{Username: username, Password: password}
	if err := s.validator.ValidateStruct(credentials); err != nil {
		vErr := domain.NewValidationError(domain.MsgCredentialsRequired)
		s.recordError(vErr)
		return credentials, vErr
	}

	return credentials, nil
}

// Logout func - Use case: Forget the token and the cached history
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state.Token = ""
	s.state.History = make([]domain.HistoryItem, 0)
	s.state.HistoryLoading = false
	s.historyEpoch++
	s.mu.Unlock()

	if err := s.tokens.ClearToken(ctx); err != nil {
		logrus.Warnf("Failed to remove persisted session token: %v", err)
	}

	logrus.Info("Logged out")
}

// LoadHistory func - Use case: Replace the cached history with the service's list
func (s *SessionService) LoadHistory(ctx context.Context) {
	s.mu.Lock()
	token := s.state.Token
	if token == "" {
		s.mu.Unlock()
		return
	}
	s.historyEpoch++
	epoch := s.historyEpoch
	s.state.HistoryLoading = true
	s.state.ErrorMessage = nil
	s.mu.Unlock()

	items, err := s.client.ListHistory(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.historyEpoch {
		logrus.Debug("Discarding stale history response")
		return
	}
	s.state.HistoryLoading = false

	if err != nil {
		logrus.Errorf("Failed to load history: %v", err)
		s.setError(domain.ErrorMessage(err, domain.MsgHistoryLoadFailed))
		return
	}

	history := make([]domain.HistoryItem, len(items))
	copy(history, items)
	s.state.History = history
}

// RemoveHistory func - Use case: Delete one history item, then refresh
func (s *SessionService) RemoveHistory(ctx context.Context, id int64) error {
	token := s.token()
	if token == "" {
		return nil
	}

	if err := s.client.DeleteHistoryItem(ctx, token, id); err != nil {
		logrus.Errorf("Failed to delete history item %d: %v", id, err)
		return err
	}

	s.LoadHistory(ctx)

	return nil
}

// ClearAllHistory func - Use case: Delete every history item, then refresh
func (s *SessionService) ClearAllHistory(ctx context.Context) error {
	token := s.token()
	if token == "" {
		return nil
	}

	if err := s.client.ClearHistory(ctx, token); err != nil {
		logrus.Errorf("Failed to clear history: %v", err)
		return err
	}

	s.LoadHistory(ctx)

	return nil
}

func (s *SessionService) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *SessionService) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setError(domain.ErrorMessage(err, domain.MsgRequestFailed))
}

// setError requires s.mu
func (s *SessionService) setError(msg string) {
	s.state.ErrorMessage = &msg
}
