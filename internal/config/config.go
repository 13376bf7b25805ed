// Package config loads the optional application config file. A missing
// file yields defaults; a malformed file is an error the CLI reports.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for pocket-academy.
type Config struct {
	// Passphrase gates the UI for the process lifetime. A single shared
	// secret; deliberately low-security for a self-study tool.
	Passphrase string `yaml:"passphrase"`

	// DBPath overrides the database location. The --db flag and the
	// POCKET_ACADEMY_DB env var take priority over this.
	DBPath string `yaml:"db_path"`

	// Theme is the default appearance ("dark" or "light") used until
	// the learner toggles and a preference is persisted.
	Theme string `yaml:"theme"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Passphrase: "1234",
		Theme:      "dark",
	}
}

// Load reads the YAML config at path, falling back to defaults for a
// missing file and for any omitted field.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Passphrase == "" {
		cfg.Passphrase = Default().Passphrase
	}
	if cfg.Theme != "dark" && cfg.Theme != "light" {
		cfg.Theme = Default().Theme
	}
	return cfg, nil
}

// DefaultPath resolves the config file path:
// 1. $XDG_CONFIG_HOME/pocket-academy/config.yaml
// 2. ~/.config/pocket-academy/config.yaml
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pocket-academy", "config.yaml"), nil
}
