package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContextHook(t *testing.T) {
	t.Run("adds section from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Hook(ContextHook{})

		ctx := WithSection(context.Background(), "dislikes")
		logger.Info().Ctx(ctx).Msg("added")

		entry := decode(t, &buf)
		assert.Equal(t, "dislikes", entry["section"])
	})

	t.Run("background context adds nothing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Hook(ContextHook{})

		logger.Info().Ctx(context.Background()).Msg("added")

		entry := decode(t, &buf)
		_, ok := entry["section"]
		assert.False(t, ok)
	})
}
