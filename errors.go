package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// APIError captures a non-2xx response from the AgentDesk API.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// decodeAPIError extracts the conventional error payload from a failed
// response. Error bodies carry a human-readable message under "detail";
// older endpoints use "message" or a nested error envelope. Unparseable
// bodies fall back to a generic HTTP status message.
func decodeAPIError(resp *http.Response) error {
	apiErr := APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d", resp.StatusCode),
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return apiErr
	}
	var detail string
	if len(payload.Detail) > 0 {
		_ = json.Unmarshal(payload.Detail, &detail)
	}
	switch {
	case strings.TrimSpace(detail) != "":
		apiErr.Message = detail
	case payload.Error.Message != "":
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	case payload.Message != "":
		apiErr.Message = payload.Message
	}
	apiErr.RequestID = payload.RequestID
	return apiErr
}

// TransportErrorKind classifies failures where no HTTP response was received.
type TransportErrorKind string

const (
	TransportErrorTimeout    TransportErrorKind = "timeout"
	TransportErrorDNS        TransportErrorKind = "dns"
	TransportErrorConnection TransportErrorKind = "connection"
	TransportErrorOther      TransportErrorKind = "other"
)

// TransportError indicates the request never produced an HTTP response.
// Transport failures are never retried by the client.
type TransportError struct {
	Kind    TransportErrorKind
	Message string
	Cause   error
}

func (e TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sdk: %s (%s): %v", e.Message, e.Kind, e.Cause)
	}
	return fmt.Sprintf("sdk: %s (%s)", e.Message, e.Kind)
}

// Unwrap exposes the underlying network error.
func (e TransportError) Unwrap() error { return e.Cause }

func classifyTransportErrorKind(err error) TransportErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return TransportErrorTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return TransportErrorDNS
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TransportErrorTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return TransportErrorConnection
	}
	return TransportErrorOther
}

// SessionExpiredError signals that a token refresh was attempted and failed.
// The client has already cleared its stored credential; callers should route
// the user back through the login flow.
type SessionExpiredError struct {
	Cause error
}

func (e *SessionExpiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sdk: session expired: %v", e.Cause)
	}
	return "sdk: session expired"
}

// Unwrap exposes the refresh failure that invalidated the session.
func (e *SessionExpiredError) Unwrap() error { return e.Cause }

// ConfigError reports invalid client configuration.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "sdk: " + e.Reason }

// ErrNoSession is reported by identity providers when no user is signed in.
var ErrNoSession = errors.New("sdk: no active identity session")

// IsSessionExpired reports whether err indicates the session credential was
// invalidated and the user must re-authenticate.
func IsSessionExpired(err error) bool {
	var se *SessionExpiredError
	return errors.As(err, &se)
}

func apiErrorStatus(err error) int {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return apiErrorStatus(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API error with status 401 or 403.
func IsUnauthorized(err error) bool {
	status := apiErrorStatus(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
