package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Settings are the optional overrides read from settings.json. Absent file
// or absent fields mean defaults; the statusline must work with no
// configuration at all.
type Settings struct {
	// GitCacheTTLMillis overrides the git status cache TTL
	GitCacheTTLMillis *int `json:"git_cache_ttl_ms,omitempty"`
	// CommandTimeoutMillis overrides the per-git-query timeout
	CommandTimeoutMillis *int `json:"command_timeout_ms,omitempty"`
	// SycophancyPhrases are counted in addition to the built-in list
	SycophancyPhrases []string `json:"sycophancy_phrases,omitempty"`
}

// GitCacheTTL returns the configured TTL or fallback.
func (s *Settings) GitCacheTTL(fallback time.Duration) time.Duration {
	if s != nil && s.GitCacheTTLMillis != nil && *s.GitCacheTTLMillis > 0 {
		return time.Duration(*s.GitCacheTTLMillis) * time.Millisecond
	}
	return fallback
}

// CommandTimeout returns the configured timeout or fallback.
func (s *Settings) CommandTimeout(fallback time.Duration) time.Duration {
	if s != nil && s.CommandTimeoutMillis != nil && *s.CommandTimeoutMillis > 0 {
		return time.Duration(*s.CommandTimeoutMillis) * time.Millisecond
	}
	return fallback
}

// Load reads settings from the default location. A missing file yields
// empty settings, not an error.
func Load() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return &Settings{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}

// settingsPath is ~/.config/barra/settings.json (XDG_CONFIG_HOME aware).
func settingsPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "barra", "settings.json"), nil
}
