// Package config provides configuration loading and structs for the matadar server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Search   SearchConfig   `yaml:"search"`
	Translit TranslitConfig `yaml:"translit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig holds the remote voter store connection settings. When
// FixturePath is set, a local JSON roll export replaces the hosted database
// (development and tests). CachePath, when set, enables the SQLite
// read-through record cache.
type StoreConfig struct {
	BaseURL        string `yaml:"base_url"`
	AuthToken      string `yaml:"auth_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	FixturePath    string `yaml:"fixture_path"`
	CachePath      string `yaml:"cache_path"`
}

// SearchConfig holds resolution and assembly settings.
type SearchConfig struct {
	BatchSize   int `yaml:"batch_size"`
	IDScanLimit int `yaml:"id_scan_limit"`
}

// TranslitConfig holds transliteration dictionary settings. DictionaryPath
// points at an optional YAML overlay of extra name mappings; Watch enables
// hot-reloading it on change.
type TranslitConfig struct {
	DictionaryPath string `yaml:"dictionary_path"`
	Watch          bool   `yaml:"watch"`
}

// envAuthToken overrides store.auth_token when set, keeping the secret out
// of the config file.
const envAuthToken = "MATADAR_AUTH_TOKEN"

// Load reads and parses the config file at path, expands paths, applies
// defaults, and honors the auth token environment override. Returns an
// error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if token := os.Getenv(envAuthToken); token != "" {
		cfg.Store.AuthToken = token
	}

	configDir := filepath.Dir(path)
	cfg.Store.FixturePath = expandPath(cfg.Store.FixturePath, configDir)
	cfg.Store.CachePath = expandPath(cfg.Store.CachePath, configDir)
	cfg.Translit.DictionaryPath = expandPath(cfg.Translit.DictionaryPath, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory. Empty paths stay empty.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
