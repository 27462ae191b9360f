package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with a log level and preset marks
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nplayers:\n  first-mark: \"#\"\n  second-mark: \"@\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		config, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "#", config.Players.FirstMark)
		assert.Equal(t, "@", config.Players.SecondMark)
		assert.True(t, config.Players.IsPreset())
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and marks in the environment
		t.Setenv("FIRST_MARK", "X")
		t.Setenv("SECOND_MARK", "O")

		// When: loading a path that does not exist
		config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults and environment values are used
		require.NoError(t, err)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, Players{FirstMark: "X", SecondMark: "O"}, config.Players)
	})

	t.Run("Marks are not preset by default", func(t *testing.T) {
		// When: loading with no file and no environment
		config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: players will be asked for their marks
		require.NoError(t, err)
		assert.False(t, config.Players.IsPreset())
	})

	t.Run("Error on malformed file", func(t *testing.T) {
		// Given: a file that is not valid yml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("players: [unclosed"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
	})

	t.Run("MustLoad panics on malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("players: [unclosed"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
