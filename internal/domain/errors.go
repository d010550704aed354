package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// User facing messages recorded by the session service
const (
	MsgEmptyText           = "Please enter some text first."
	MsgCredentialsRequired = "Username and password required"
	MsgUnknownTransform    = "Unknown transformation"
	MsgRequestFailed       = "Request failed"
	MsgHistoryLoadFailed   = "Could not load history"
)

const httpErrorMessagePattern = "HTTP %d: %s"

var (
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrMalformedResponse indicates a success response that could not be decoded
	ErrMalformedResponse = errors.New("malformed response")
)

// ValidationError is a local rejection made before any network call
type ValidationError struct {
	Message string
}

// NewValidationError func
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HTTPError is returned when the remote service answers with a non-success status
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	msg := e.Body
	if msg == "" {
		msg = e.statusPhrase()
	}
	return fmt.Sprintf(httpErrorMessagePattern, e.StatusCode, msg)
}

func (e *HTTPError) statusPhrase() string {
	// net/http formats Status as "401 Unauthorized"
	if phrase := strings.TrimSpace(strings.TrimPrefix(e.Status, fmt.Sprint(e.StatusCode))); phrase != "" {
		return phrase
	}
	return http.StatusText(e.StatusCode)
}

// TransportError is a network failure that happened before a status was obtained.
// Its message is the message of the underlying error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorMessage returns the message to show for err, or fallback when err carries none
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// StatusCode returns the remote status code carried by err, if any
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
