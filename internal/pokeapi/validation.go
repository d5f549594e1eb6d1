package pokeapi

import (
	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/identifier"
)

// ValidateIdentifier checks that a pokemon identifier is usable before any
// network call is made. The normalized form is returned on success.
func ValidateIdentifier(raw string) (string, error) {
	normalized := identifier.Normalize(raw)
	if normalized == "" {
		return "", apierrors.NewValidationError("pokemon", raw, "pokemon name or id is required")
	}
	return normalized, nil
}
