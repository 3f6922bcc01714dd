package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ws://127.0.0.1:8000", cfg.ServerURL)
	assert.Equal(t, PlaceholderCallerID, cfg.CallerID)
	assert.Equal(t, 5, cfg.RetryDelaySec)
}

func TestEndpoint(t *testing.T) {
	cfg := Config{ServerURL: "wss://lobby.example.com", CallerID: "12345"}

	assert.Equal(t, "wss://lobby.example.com/ws/12345", cfg.Endpoint())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobby.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url: wss://lobby.example.com\ncaller_id: \"777\"\nretry_delay_sec: 10\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "wss://lobby.example.com", cfg.ServerURL)
	assert.Equal(t, "777", cfg.CallerID)
	assert.Equal(t, 10, cfg.RetryDelaySec)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobby.yaml")
	require.NoError(t, os.WriteFile(path, []byte("caller_id: from-file\n"), 0o600))
	t.Setenv("LOBBY_CALLER_ID", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.CallerID)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default().ServerURL, cfg.ServerURL)
}

func TestLoad_EmptyCallerIDGetsPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobby.yaml")
	require.NoError(t, os.WriteFile(path, []byte("caller_id: \"\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, PlaceholderCallerID, cfg.CallerID)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobby.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [broken\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
