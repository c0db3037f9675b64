// Package headers defines HTTP header constants used across the AgentDesk
// API surface. This is the single source of truth for header names used in
// requests/responses.
package headers

const (
	// RequestID is the header for request correlation / idempotency.
	// Clients can supply this header for idempotency on retries.
	RequestID = "X-AgentDesk-Request-Id"

	// Client identifies the SDK or dashboard build issuing the request.
	Client = "X-AgentDesk-Client"
)
