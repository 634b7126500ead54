package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/forumapi/forumapi/internal/errors"
	"github.com/forumapi/forumapi/internal/logger"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// WriteErrorAndStatusCode maps the error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an internal failure.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *errors.ValidationError:
		http.Error(w, e.Error(), http.StatusBadRequest)
	case *errors.NotFoundError:
		http.Error(w, e.Error(), http.StatusNotFound)
	case *errors.AuthorizationError:
		http.Error(w, e.Error(), http.StatusForbidden)
	case *errors.ErrorWithStatusCode:
		http.Error(w, e.Error(), e.StatusCode)
	default:
		logger.Log.Error("unhandled error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// DecodeValidate decodes a JSON body and checks the struct's validate tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// Decode decodes a JSON body without struct validation, for payloads whose
// field checks belong to the domain factories.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// SanitizeUserInput strips markup from a dynamically-typed payload field.
// Non-string values pass through untouched so the domain factories still see
// the original type.
func SanitizeUserInput(v any) any {
	if s, ok := v.(string); ok {
		return sanitizePolicy.Sanitize(s)
	}
	return v
}
