package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Section narrows a component logger to one preference section.
func Section(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(sectionField, name).Logger()
}
