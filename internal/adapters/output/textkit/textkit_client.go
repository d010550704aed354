package textkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"textkit-client/configs"
	"textkit-client/internal/domain"
	"textkit-client/internal/ports/output"
	"textkit-client/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Compile-time check to ensure TextkitClientAdapter implements TextkitClient interface
var _ output.TextkitClient = (*TextkitClientAdapter)(nil)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	headerRequestID = "X-Request-ID"

	signupPath  = "/auth/signup"
	loginPath   = "/auth/login"
	historyPath = "/history/"
)

// TextkitClientAdapter struct - Output adapter for the remote text service
type TextkitClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	validator  validator.Validator
}

// NewTextkitClientAdapter func - Creates new text service client adapter
func NewTextkitClientAdapter(config configs.API) (*TextkitClientAdapter, error) {
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = configs.DefaultAPIBaseURL
	}

	// Remove trailing slash if present
	baseURL = strings.TrimSuffix(baseURL, "/")

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid text service base URL %q", config.BaseURL)
	}

	// No client timeout unless configured: a pending exchange runs to completion
	var timeout time.Duration
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: otelhttp.NewTransport(&http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		}),
	}

	adapter := &TextkitClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		timeout:    timeout,
		validator:  validator.New(),
	}

	logrus.Infof("Text service client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// Transform sends text to the endpoint of the given kind
func (a *TextkitClientAdapter) Transform(ctx context.Context, kind domain.TransformKind, text, token string) (*domain.TransformResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown transformation kind %q", kind)
	}

	bodyBytes, err := json.Marshal(domain.TransformRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transform request: %w", err)
	}

	resp, err := a.do(ctx, "transform", http.MethodPost, kind.Path(), token, bytes.NewReader(bodyBytes), contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var apiResp transformAPIResponse
	if err := a.decode(resp, "transform", &apiResp); err != nil {
		return nil, err
	}

	return &domain.TransformResponse{Result: *apiResp.Result}, nil
}

// Signup registers a new account with a JSON payload
func (a *TextkitClientAdapter) Signup(ctx context.Context, credentials domain.Credentials) error {
	bodyBytes, err := json.Marshal(credentials)
	if err != nil {
		return fmt.Errorf("failed to marshal signup request: %w", err)
	}

	resp, err := a.do(ctx, "signup", http.MethodPost, signupPath, "", bytes.NewReader(bodyBytes), contentTypeJSON)
	if err != nil {
		return err
	}
	drainAndClose(resp)

	logrus.Infof("Signed up user: %s", credentials.Username)

	return nil
}

// Login exchanges form-encoded credentials for a bearer token
func (a *TextkitClientAdapter) Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", credentials.Username)
	form.Set("password", credentials.Password)

	resp, err := a.do(ctx, "login", http.MethodPost, loginPath, "", strings.NewReader(form.Encode()), contentTypeForm)
	if err != nil {
		return nil, err
	}

	var apiResp loginAPIResponse
	if err := a.decode(resp, "login", &apiResp); err != nil {
		return nil, err
	}

	logrus.Infof("Logged in user: %s, token type: %s", credentials.Username, apiResp.TokenType)

	return &domain.LoginResponse{
		AccessToken: apiResp.AccessToken,
		TokenType:   apiResp.TokenType,
	}, nil
}

// ListHistory fetches the complete history of the authenticated user
func (a *TextkitClientAdapter) ListHistory(ctx context.Context, token string) ([]domain.HistoryItem, error) {
	resp, err := a.do(ctx, "list history", http.MethodGet, historyPath, token, nil, "")
	if err != nil {
		return nil, err
	}

	var apiItems []historyItemAPI
	if err := a.decodeJSON(resp, "list history", &apiItems); err != nil {
		return nil, err
	}

	// Convert to domain models
	items := make([]domain.HistoryItem, 0, len(apiItems))
	for i, item := range apiItems {
		if err := a.validator.ValidateStruct(item); err != nil {
			return nil, fmt.Errorf("%w: history item %d missing %s", domain.ErrMalformedResponse, i, strings.Join(validator.FieldNames(err), ", "))
		}
		timestamp, err := domain.ParseTimestamp(item.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: history item %d: %v", domain.ErrMalformedResponse, *item.ID, err)
		}
		items = append(items, domain.HistoryItem{
			ID:           *item.ID,
			OriginalText: item.OriginalText,
			ResultText:   item.ResultText,
			Type:         item.Type,
			Timestamp:    timestamp,
		})
	}

	logrus.Debugf("Listed %d history items", len(items))

	return items, nil
}

// DeleteHistoryItem removes one history record
func (a *TextkitClientAdapter) DeleteHistoryItem(ctx context.Context, token string, id int64) error {
	path := historyPath + strconv.FormatInt(id, 10)
	resp, err := a.do(ctx, "delete history item", http.MethodDelete, path, token, nil, "")
	if err != nil {
		return err
	}
	drainAndClose(resp)

	logrus.Infof("Deleted history item: %d", id)

	return nil
}

// ClearHistory removes every history record of the user
func (a *TextkitClientAdapter) ClearHistory(ctx context.Context, token string) error {
	resp, err := a.do(ctx, "clear history", http.MethodDelete, historyPath, token, nil, "")
	if err != nil {
		return err
	}
	drainAndClose(resp)

	logrus.Info("Cleared history")

	return nil
}

// do issues a single request and maps failures. On success the caller owns resp.Body.
func (a *TextkitClientAdapter) do(ctx context.Context, op, method, path, token string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"op":         op,
		"method":     method,
		"path":       path,
	})

	resp, err := a.httpClient.Do(req)
	if err != nil {
		logger.Errorf("Text service request failed: %v", err)
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		logger.WithField("status", resp.StatusCode).Warn("Text service rejected request")
		return nil, &domain.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}

	logger.WithField("status", resp.StatusCode).Debug("Text service request succeeded")

	return resp, nil
}

// decode parses a JSON object body into v and checks its required fields
func (a *TextkitClientAdapter) decode(resp *http.Response, op string, v interface{}) error {
	if err := a.decodeJSON(resp, op, v); err != nil {
		return err
	}
	if err := a.validator.ValidateStruct(v); err != nil {
		return fmt.Errorf("%w: %s response missing %s", domain.ErrMalformedResponse, op, strings.Join(validator.FieldNames(err), ", "))
	}
	return nil
}

func (a *TextkitClientAdapter) decodeJSON(resp *http.Response, op string, v interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to parse %s response: %v", domain.ErrMalformedResponse, op, err)
	}
	return nil
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// API response structures of the text service

// transformAPIResponse represents the body of every transformation endpoint
type transformAPIResponse struct {
	Result *string `json:"result" validate:"required"`
}

// loginAPIResponse represents the OAuth2 password flow token response
type loginAPIResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}

// historyItemAPI represents one element of the history list
type historyItemAPI struct {
	ID           *int64 `json:"id" validate:"required"`
	OriginalText string `json:"original_text"`
	ResultText   string `json:"result_text"`
	Type         string `json:"type" validate:"required"`
	Timestamp    string `json:"timestamp" validate:"required"`
}
