package client

import "fmt"

// Every remote failure maps to exactly one of the types below. Callers
// branch with errors.As; no error here is retried automatically.

// AuthError means no credential was held for the call, or the remote
// rejected the one that was sent.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth error: " + e.Reason
}

// TransportError means the request could not be sent or the response could
// not be received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError means the remote answered with a non-success status.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("service error: status %d", e.Status)
}

// ProtocolError means the response status was fine but the body violated
// the expected shape. It exists so a malformed catalog payload surfaces
// instead of silently becoming an empty catalog.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Reason
}
