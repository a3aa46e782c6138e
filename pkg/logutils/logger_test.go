package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes to nested file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "mealprefs.log")

		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg("hello")
		logger.Debug().Msg("filtered")
		closer()

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello"`)
		assert.NotContains(t, string(data), "filtered")
	})

	t.Run("empty file discards", func(t *testing.T) {
		logger, closer, err := New("debug", "")
		require.NoError(t, err)
		defer closer()
		logger.Info().Msg("dropped")
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := New("loud", "")
		require.Error(t, err)
	})
}
