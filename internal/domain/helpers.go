package domain

import (
	internal_errors "github.com/forumapi/forumapi/internal/errors"
)

// Payload validation runs in two phases: every field is checked for presence
// first, then for its type. A payload that is both incomplete and wrongly
// typed reports the missing field.

func missingField(field string) error {
	return &internal_errors.ValidationError{Kind: internal_errors.MissingField, Field: field}
}

func typeMismatch(field string) error {
	return &internal_errors.ValidationError{Kind: internal_errors.TypeMismatch, Field: field}
}

// present reports whether a dynamically-typed payload field carries a value.
// nil and the empty string both count as absent.
func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

func asString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(field)
	}
	return s, nil
}
