package errors

import (
	"errors"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name: "pokemon by name",
			err: &NotFoundError{
				EntityType: "pokemon",
				Identifier: "pikachuu",
			},
			expected: "pokemon not found: pikachuu",
		},
		{
			name: "pokemon by id",
			err: &NotFoundError{
				EntityType: "pokemon",
				Identifier: "99999",
			},
			expected: "pokemon not found: 99999",
		},
		{
			name: "cry asset",
			err: &NotFoundError{
				EntityType: "cry",
				Identifier: "25",
			},
			expected: "cry not found: 25",
		},
		{
			name: "without entity type",
			err: &NotFoundError{
				Identifier: "mewtwo",
			},
			expected: "not found: mewtwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("NotFoundError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("pikachu")

	if err.EntityType != "pokemon" {
		t.Errorf("EntityType = %q, want %q", err.EntityType, "pokemon")
	}
	if err.Identifier != "pikachu" {
		t.Errorf("Identifier = %q, want %q", err.Identifier, "pikachu")
	}
}

func TestNewCryNotFoundError(t *testing.T) {
	err := NewCryNotFoundError("25")

	if err.EntityType != "cry" {
		t.Errorf("EntityType = %q, want %q", err.EntityType, "cry")
	}
	if err.Identifier != "25" {
		t.Errorf("Identifier = %q, want %q", err.Identifier, "25")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field and value",
			err: &ValidationError{
				Field:   "pokemon",
				Value:   "   ",
				Message: "must not be blank",
			},
			expected: "validation failed for pokemon=\"   \": must not be blank",
		},
		{
			name: "with field only",
			err: &ValidationError{
				Field:   "pokemon",
				Message: "is required",
			},
			expected: "validation failed for pokemon: is required",
		},
		{
			name: "message only",
			err: &ValidationError{
				Message: "invalid input",
			},
			expected: "validation failed: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("pokemon", "", "is required")

	if err.Field != "pokemon" {
		t.Errorf("Field = %q, want %q", err.Field, "pokemon")
	}
	if err.Value != "" {
		t.Errorf("Value = %q, want %q", err.Value, "")
	}
	if err.Message != "is required" {
		t.Errorf("Message = %q, want %q", err.Message, "is required")
	}
}

func TestIsNotFound(t *testing.T) {
	notFoundErr := &NotFoundError{EntityType: "pokemon", Identifier: "missingno"}
	validationErr := &ValidationError{Message: "test"}
	plainErr := errors.New("plain error")

	if !IsNotFound(notFoundErr) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsNotFound(validationErr) {
		t.Error("IsNotFound should return false for ValidationError")
	}
	if IsNotFound(plainErr) {
		t.Error("IsNotFound should return false for plain error")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound should return false for nil")
	}
}

func TestIsValidation(t *testing.T) {
	notFoundErr := &NotFoundError{EntityType: "pokemon", Identifier: "missingno"}
	validationErr := &ValidationError{Message: "test"}
	plainErr := errors.New("plain error")

	if IsValidation(notFoundErr) {
		t.Error("IsValidation should return false for NotFoundError")
	}
	if !IsValidation(validationErr) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(plainErr) {
		t.Error("IsValidation should return false for plain error")
	}
	if IsValidation(nil) {
		t.Error("IsValidation should return false for nil")
	}
}
