package trello

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken indicates the server rejected credentials that were
	// present on the request (HTTP 401). Distinct from ConfigurationError:
	// credentials existed, Trello refused them.
	ErrInvalidToken = errors.New("invalid or expired access token")

	// ErrNotSaved indicates a record-level precondition failure: the record
	// has no id yet, so it cannot be updated, deleted or refreshed.
	ErrNotSaved = errors.New("record has not been saved")

	// ErrNotFound indicates a required single association resolved to an
	// empty response.
	ErrNotFound = errors.New("not found")
)

// ConfigurationError indicates the library cannot issue a request at all:
// no usable transport, or credentials absent for a call that requires them.
// It is raised before anything leaves the process.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "trello: not configured: " + e.Reason
}

// APIError carries a non-2xx response status together with a fragment of the
// server-provided message. 4xx statuses are not retryable; 5xx may be, but
// the library never retries on its own.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("trello: API error: status %d", e.Status)
	}
	return fmt.Sprintf("trello: API error: status %d: %s", e.Status, e.Message)
}

// TransportError wraps a network-level failure (timeout, connection refused,
// DNS). All transport failures collapse into this one category.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("trello: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
