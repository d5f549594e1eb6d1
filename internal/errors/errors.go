// Package errors provides shared error types for the PokeAPI client packages.
package errors

import (
	"fmt"
)

// NotFoundError indicates an upstream lookup found no matching resource.
type NotFoundError struct {
	EntityType string // "pokemon", "cry"
	Identifier string // name or numeric id as requested by the caller
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found: %s", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a pokemon lookup.
func NewNotFoundError(identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: "pokemon",
		Identifier: identifier,
	}
}

// NewCryNotFoundError creates a NotFoundError for a cry asset lookup.
func NewCryNotFoundError(identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: "cry",
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
