// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"strings"

	"github.com/hay-kot/criterio"
)

// ErrBlank is returned for text that is empty after trimming whitespace.
var ErrBlank = errors.New("text is required")

// Text trims surrounding whitespace and rejects blank input.
func Text(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrBlank
	}
	return trimmed, nil
}

// NonBlank validates a value is non-empty after trimming whitespace.
func NonBlank(s string) error {
	_, err := Text(s)
	return err
}

// NonBlankField returns a criterio validator for required text fields.
func NonBlankField(field, value string) error {
	return criterio.Run(field, value, NonBlank)
}

// OneOf returns a validator accepting only the listed values.
func OneOf(allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return errors.New("must be one of: " + strings.Join(allowed, ", "))
	}
}
