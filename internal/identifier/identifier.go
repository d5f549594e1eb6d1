// Package identifier normalizes and classifies pokemon identifiers.
//
// PokeAPI addresses the same pokemon by lowercase name ("pikachu") or by
// decimal pokedex id ("25"); both forms are used verbatim as the final
// path segment of a lookup.
package identifier

import (
	"strings"
)

// Form describes which addressing form an identifier uses.
type Form string

const (
	// FormName is a species name such as "pikachu" or "mr-mime".
	FormName Form = "name"

	// FormID is a decimal pokedex id such as "25".
	FormID Form = "id"
)

// Normalize prepares a raw identifier for use as a request path segment.
// Surrounding whitespace is dropped and letters are lowercased, matching
// the API's name convention. Numeric ids pass through unchanged.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// DetectForm reports whether a normalized identifier is a pokedex id or
// a species name. Anything that is not all digits is treated as a name;
// the API itself is the only authority on whether it resolves.
func DetectForm(identifier string) Form {
	if IsNumeric(identifier) {
		return FormID
	}
	return FormName
}

// IsNumeric checks if an identifier consists only of decimal digits.
func IsNumeric(identifier string) bool {
	for _, c := range identifier {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(identifier) > 0
}
