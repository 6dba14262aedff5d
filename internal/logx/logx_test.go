package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Run("info logger drops debug lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Debug().Msg("hidden")
		logger.Info().Int("cycles", 42).Msg("search finished")

		out := buf.String()
		require.NotContains(t, out, "hidden")
		require.Contains(t, out, "search finished")
		require.Contains(t, out, "cycles")
		require.Contains(t, out, "42")
	})

	t.Run("verbose logger keeps debug lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug().Msg("decisive move found")
		require.Contains(t, buf.String(), "decisive move found")
	})
}
