package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BaseURL)
	require.Equal(t, "info", c.LogLevel)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvBaseURL, "")

	want := Config{BaseURL: "https://auth.example.com", LogLevel: "debug"}
	require.NoError(t, Save(want))

	// File lands in the gatepass subdirectory.
	require.FileExists(t, filepath.Join(dir, "gatepass", "config.json"))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, Save(Config{BaseURL: "https://file.example.com", LogLevel: "info"}))

	t.Setenv(EnvBaseURL, "https://env.example.com")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", c.BaseURL)
}

func TestLoadFillsMissingFields(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")
	require.NoError(t, Save(Config{}))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BaseURL)
	require.Equal(t, "info", c.LogLevel)
}
