package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "spicy", cfg.Tone)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "gnomemode.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/garden.db\ngemini_api_key: file-key\ntone: cursed\ndebug: true\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/garden.db", cfg.DBPath)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	assert.Equal(t, "cursed", cfg.Tone)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel, "unset model falls back to default")
}

func TestEnvOverridesFileKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "gnomemode.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini_api_key: file-key\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnomemode.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tone: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
