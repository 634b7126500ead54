package errors

import "fmt"

// ValidationKind tells apart payloads with absent fields from payloads
// carrying the wrong types.
type ValidationKind string

const (
	MissingField ValidationKind = "missing field"
	TypeMismatch ValidationKind = "type mismatch"
)

// ValidationError is returned by entity factories on malformed input.
// Never retried; maps to 400 at the HTTP boundary.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s: %s", e.Kind, e.Field)
}

// NotFoundError is returned by storage when a referenced id does not exist.
// Message distinguishes which entity was missing. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the acting user does not own the
// resource. Distinct from authentication failure (handled in middleware).
// Maps to 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ErrorWithStatusCode covers boundary failures outside the core taxonomy
// (taken username, bad credentials). Handlers pass the status code through.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}
