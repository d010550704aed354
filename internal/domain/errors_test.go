package domain

import (
	"errors"
	"fmt"
	"net"
	"testing"
	"time"
)

// TestHTTPErrorMessageUsesBody tests that the response body becomes the message
func TestHTTPErrorMessageUsesBody(t *testing.T) {
	err := &HTTPError{StatusCode: 401, Status: "401 Unauthorized", Body: `{"detail":"Incorrect username or password"}`}

	want := `HTTP 401: {"detail":"Incorrect username or password"}`
	if err.Error() != want {
		t.Errorf("expected %s, got %s", want, err.Error())
	}
}

// TestHTTPErrorMessageFallsBackToStatusPhrase tests the empty body case
func TestHTTPErrorMessageFallsBackToStatusPhrase(t *testing.T) {
	err := &HTTPError{StatusCode: 502, Status: "502 Bad Gateway"}
	if err.Error() != "HTTP 502: Bad Gateway" {
		t.Errorf("expected status phrase, got %s", err.Error())
	}

	err = &HTTPError{StatusCode: 404}
	if err.Error() != "HTTP 404: Not Found" {
		t.Errorf("expected http.StatusText fallback, got %s", err.Error())
	}
}

// TestHTTPErrorMessageKeepsBlankBody tests that only an empty body falls back
func TestHTTPErrorMessageKeepsBlankBody(t *testing.T) {
	err := &HTTPError{StatusCode: 500, Status: "500 Internal Server Error", Body: "  "}
	if err.Error() != "HTTP 500:   " {
		t.Errorf("expected raw body, got %q", err.Error())
	}
}

// TestValidationErrorMatchesSentinel tests errors.Is against ErrValidation
func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("signup: %w", NewValidationError(MsgCredentialsRequired))

	if !errors.Is(err, ErrValidation) {
		t.Error("expected wrapped validation error to match ErrValidation")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Message != MsgCredentialsRequired {
		t.Errorf("expected ValidationError with message %q", MsgCredentialsRequired)
	}
}

// TestTransportErrorKeepsNativeMessage tests that a network failure keeps its own message
func TestTransportErrorKeepsNativeMessage(t *testing.T) {
	cause := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := &TransportError{Op: "transform", Err: cause}

	if err.Error() != cause.Error() {
		t.Errorf("expected native message %q, got %q", cause.Error(), err.Error())
	}

	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Error("expected TransportError to unwrap to the cause")
	}
}

// TestErrorMessageFallback tests the fallback when an error carries no message
func TestErrorMessageFallback(t *testing.T) {
	if got := ErrorMessage(errors.New(""), MsgRequestFailed); got != MsgRequestFailed {
		t.Errorf("expected fallback, got %q", got)
	}

	if got := ErrorMessage(nil, MsgHistoryLoadFailed); got != MsgHistoryLoadFailed {
		t.Errorf("expected fallback for nil, got %q", got)
	}

	if got := ErrorMessage(errors.New("boom"), MsgRequestFailed); got != "boom" {
		t.Errorf("expected boom, got %q", got)
	}
}

// TestStatusCode tests extraction of the remote status
func TestStatusCode(t *testing.T) {
	code, ok := StatusCode(fmt.Errorf("wrapped: %w", &HTTPError{StatusCode: 409}))
	if !ok || code != 409 {
		t.Errorf("expected 409, got %d (%v)", code, ok)
	}

	if _, ok := StatusCode(errors.New("plain")); ok {
		t.Error("expected no status for a plain error")
	}
}

// TestParseTimestamp tests zone-less and zoned history timestamps
func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 15, 123456000, time.UTC)

	for _, value := range []string{
		"2024-03-01T12:30:15.123456",
		"2024-03-01T12:30:15.123456Z",
		"2024-03-01T14:30:15.123456+02:00",
		"2024-03-01 12:30:15.123456",
	} {
		got, err := ParseTimestamp(value)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) returned error: %v", value, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", value, got, want)
		}
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("expected error for an unrecognized timestamp")
	}

	if FormatTimestamp(want) != "2024-03-01T12:30:15Z" {
		t.Errorf("unexpected formatted timestamp %s", FormatTimestamp(want))
	}
}
