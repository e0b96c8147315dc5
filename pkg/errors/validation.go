package errors

import (
	"math"
	"unicode"
)

// MaxParamNameLength bounds parameter names accepted from users.
const MaxParamNameLength = 256

// ValidateParamName validates a parameter name given on the command line
// or in an API request.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateParamName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "parameter name cannot be empty")
	}
	if len(name) > MaxParamNameLength {
		return New(ErrCodeInvalidInput, "parameter name too long (max %d characters)", MaxParamNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "parameter name contains invalid control characters")
		}
	}
	return nil
}

// ValidateNodeCount rejects graphs larger than max. A non-positive max
// disables the check.
func ValidateNodeCount(n, max int) error {
	if max > 0 && n > max {
		return New(ErrCodeInvalidInput, "graph has %d nodes (max %d)", n, max)
	}
	return nil
}

// ValidateFinite checks that every named value is a finite number.
func ValidateFinite(values map[string]float64) error {
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
		}
	}
	return nil
}
