package common

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// ValidationRule checks one field value.
type ValidationRule func(fieldName string, value interface{}) *ValidationError

// Validator provides validation utilities
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{errors: make([]ValidationError, 0)}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value interface{}, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Error returns a combined error, or nil when everything validated.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	msgs := make([]string, len(v.errors))
	for i, e := range v.errors {
		msgs[i] = e.Error()
	}
	return NewAppError("VALIDATION_ERROR", strings.Join(msgs, "; "), ErrInvalidInput)
}

// Required fails on empty strings.
func Required(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok || strings.TrimSpace(str) == "" {
		return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
	}
	return nil
}

// MaxLength bounds a string's byte length.
func MaxLength(max int) ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		str, ok := value.(string)
		if !ok {
			return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
		}
		if len(str) > max {
			return &ValidationError{Field: fieldName, Message: fmt.Sprintf("must be at most %d bytes", max)}
		}
		return nil
	}
}

// UTF8Text rejects byte soup masquerading as text input.
func UTF8Text(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}
	if !utf8.ValidString(str) {
		return &ValidationError{Field: fieldName, Message: "must be valid UTF-8"}
	}
	return nil
}

// Base64Payload checks that a value decodes as standard base64, as the image
// endpoints require. Data-URL prefixes ("data:image/png;base64,") are
// tolerated and skipped.
func Base64Payload(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok || strings.TrimSpace(str) == "" {
		return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
	}
	payload := str
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return &ValidationError{Field: fieldName, Message: "must be base64-encoded"}
	}
	return nil
}
