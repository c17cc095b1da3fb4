// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token goes to the
// OS keyring via internal/tokenstore.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"gatepass/cli/internal/xdg"
)

// DefaultBaseURL is the auth service used when nothing else is configured.
const DefaultBaseURL = "https://api.gatepass.dev"

// EnvBaseURL overrides the configured base URL when set.
const EnvBaseURL = "GATEPASS_BASE_URL"

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL  string `json:"base_url"`
	LogLevel string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// The GATEPASS_BASE_URL environment variable wins over the file value.
func Load() (Config, error) {
	c := Config{BaseURL: DefaultBaseURL, LogLevel: "info"}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&c)
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	applyEnv(&c)
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
