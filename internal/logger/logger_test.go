package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prevLevel, prevLogger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})

	t.Run("default level hides debug", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := Setup(&buf, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultLevel, l.GetLevel())

		log.Debug().Msg("hidden")
		log.Warn().Msg("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("debug level", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Setup(&buf, "DEBUG")
		require.NoError(t, err)

		log.Debug().Str("url", "https://alphacephei.com").Msg("visible")
		assert.Contains(t, buf.String(), "visible")
		assert.Contains(t, buf.String(), "url=https://alphacephei.com")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := Setup(&bytes.Buffer{}, "loud")
		assert.Error(t, err)
	})
}
