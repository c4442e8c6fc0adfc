package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
marker: course.toml
lecturesDir: units
commonDir: shared
docsDir: site
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "course.toml", cfg.Marker)
		assert.Equal(t, "units", cfg.LecturesDir)
		assert.Equal(t, "shared", cfg.CommonDir)
		assert.Equal(t, "site", cfg.DocsDir)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Marker)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("COURSEKIT_LECTURES_DIR", "env-lectures")
		t.Setenv("COURSEKIT_LOG_TIMESTAMPS", "false")

		configFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-lectures", cfg.LecturesDir)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("COURSEKIT_MARKER", "env.toml")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`marker: file.toml`), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env.toml", cfg.Marker)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("marker: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}

func TestLoaderLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFileExists(t *testing.T) {
	t.Run("returns true for existing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
