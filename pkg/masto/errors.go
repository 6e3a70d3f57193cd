package masto

import (
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// Local precondition errors
// ============================================================================

var (
	// ErrAccessTokenRequired is returned before any network call when an
	// operation needs an authenticated session but the session record carries
	// no access token.
	ErrAccessTokenRequired = errors.New("masto: access token required")

	// ErrClientIDRequired is returned when the instance's app registration
	// response did not contain a client_id.
	ErrClientIDRequired = errors.New("masto: client id required")

	// ErrClientSecretRequired is returned when the instance's app registration
	// response did not contain a client_secret.
	ErrClientSecretRequired = errors.New("masto: client secret required")
)

// ============================================================================
// APIError - structured error body returned by the instance
// ============================================================================

// APIError is the structured error payload a Mastodon instance returns in
// place of a success payload when it rejects a request, e.g.
// {"error": "invalid_grant", "error_description": "..."}.
type APIError struct {
	// Code is the short machine error category (the "error" JSON field)
	Code string `json:"error"`

	// Description is the optional human-readable detail
	Description string `json:"error_description,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// ============================================================================
// Transport and status-classified errors
// ============================================================================

// NetworkError wraps a transport-level failure (DNS, TLS, connection reset,
// timeout). The underlying cause is kept for diagnostics and is reachable
// through errors.Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("masto: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ClientError reports a 4xx response with no further structured detail.
type ClientError struct {
	StatusCode int
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("masto: client error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ServerError reports a 5xx response with no further structured detail.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("masto: server error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError reports a response body that matched neither the expected
// success shape nor the API error shape. Err is the failure from the first
// (success-shape) decode attempt, which is the diagnostic one when the
// instance's API has drifted from the entity definitions here.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("masto: decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
