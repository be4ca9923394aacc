// Package apperror defines the error taxonomy shared by usecases, repositories
// and HTTP handlers. Handlers map these sentinels onto status codes.
package apperror

import "errors"

var (
	// ErrNotFound marks an absent entity (404). Absence is a business outcome,
	// not a store failure: the dual store does not fall back on it.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized marks a missing/invalid token or ownership mismatch (401).
	ErrNotAuthorized = errors.New("not authorized")
	// ErrTokenExpired marks an expired session token (401, distinct message).
	ErrTokenExpired = errors.New("session expired")
	// ErrValidation marks a malformed or missing required field (400).
	ErrValidation = errors.New("validation failed")
	// ErrUpstream marks a provider failure that is surfaced (500). The AI path
	// never returns this; it falls back instead.
	ErrUpstream = errors.New("upstream provider error")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
