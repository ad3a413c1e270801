package lampsetup

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewLogger(t *testing.T) {
	t.Run("json to fallback writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := NewLogger(LogConfig{Level: "info", Format: "json"}, &buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Debug("hidden")
		logger.Info("run", "step", "Installing Apache")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "run", rec["msg"])
		assert.Equal(t, "Installing Apache", rec["step"])
	})

	t.Run("file sink", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "lampsetup.log")
		logger, closer, err := NewLogger(LogConfig{Level: "warn", File: path}, &buf)
		require.NoError(t, err)

		logger.Warn("aborted on dns mismatch", "domain", "example.com")
		require.NoError(t, closer.Close())

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "aborted on dns mismatch")
		assert.Empty(t, buf.String())
	})
}
