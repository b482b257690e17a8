package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gdkp-ledger/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.False(t, cfg.Storage.Enabled)
		assert.Equal(t, "gdkp", cfg.Storage.Bucket)
		assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Empty(t, cfg.Paths.Root)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("PATHS_DEST", "/srv/gdkp/site")
		t.Setenv("STORAGE_ENABLED", "true")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "/srv/gdkp/site", cfg.Paths.Dest)
		assert.True(t, cfg.Storage.Enabled)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("DotEnv", func(t *testing.T) {
		// Registered first so the value set by the .env file is restored.
		t.Setenv("PATHS_ROOT", "")

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PATHS_ROOT=/srv/gdkp/raw\n"), 0o644))

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "/srv/gdkp/raw", cfg.Paths.Root)
	})
}
