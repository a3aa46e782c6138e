package logging

import "context"

type contextKey string

const (
	sectionKey   contextKey = "section"
	sectionField            = "section"
)

// WithSection adds a preference section name to the context.
func WithSection(ctx context.Context, section string) context.Context {
	return context.WithValue(ctx, sectionKey, section)
}

// GetSection retrieves the section name from the context.
// Returns empty string if not present.
func GetSection(ctx context.Context) string {
	if s, ok := ctx.Value(sectionKey).(string); ok {
		return s
	}
	return ""
}
