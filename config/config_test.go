package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("loading a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		body := "output_dir: out\nlog_level: debug\npretty: false\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "out", cfg.OutputDir)
		require.Equal(t, "debug", cfg.Level)
		require.False(t, cfg.Pretty)
	})

	t.Run("partial files keep defaults for omitted fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "warn", cfg.Level)
		require.Equal(t, Default().OutputDir, cfg.OutputDir)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_dir: [broken"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("rejecting unknown log levels", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "solver.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestLogLevel(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, Default().LogLevel())
	require.Equal(t, zerolog.DebugLevel, Config{Level: "debug"}.LogLevel())
}
