package message

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Stable decode failure categories. All of them are terminal for the record
// being decoded; none indicate a transient condition worth retrying.
const (
	// A field present on the wire has a shape incompatible with its
	// declared type.
	ErrorFieldType = "field_type"
	// Forward fields are present but match neither legal combination.
	ErrorInvalidForward = "invalid_forward"
	// A recognized entity tag is missing its mandatory companion field.
	ErrorMissingRequiredField = "missing_required_field"
)

// DecodeError is a categorized normalization failure.
type DecodeError struct {
	Category string
	// Wire key the failure is about, when one can be named.
	Field  string
	Detail string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Field != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Category, e.Field, e.Detail)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Category, e.Field)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Category, e.Detail)
	default:
		return e.Category
	}
}

// CategoryFromError returns the stable decode category for an error when
// available, and "" otherwise.
func CategoryFromError(err error) string {
	if err == nil {
		return ""
	}

	var categorized *DecodeError
	if errors.As(err, &categorized) {
		return categorized.Category
	}

	return ""
}

func invalidForward(detail string) error {
	return &DecodeError{Category: ErrorInvalidForward, Detail: detail}
}

func missingRequiredField(field string) error {
	return &DecodeError{Category: ErrorMissingRequiredField, Field: field}
}

// normalizeJSONError converts encoding/json type mismatches into the
// field_type category so callers see one error surface regardless of where
// the mismatch was caught. Other errors pass through untouched.
func normalizeJSONError(err error) error {
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{
			Category: ErrorFieldType,
			Field:    typeErr.Field,
			Detail:   fmt.Sprintf("cannot decode %s into %s", typeErr.Value, typeErr.Type),
		}
	}

	return err
}
