// Package env reads ziwei overrides from the process environment.
package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// Config holds the environment overrides. Unset values are zero.
type Config struct {
	// Home is the directory holding config.toml and the chart database.
	Home string `env:"ZIWEI_HOME"`

	// Verbose enables debug logging, like the --verbose flag.
	Verbose bool `env:"ZIWEI_VERBOSE" envDefault:"false"`

	// Storage overrides storage.backend from config.toml.
	Storage domain.StorageBackend `env:"ZIWEI_STORAGE"`
}

// Load parses the environment into a Config and resolves Home.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Storage != "" && !cfg.Storage.IsValid() {
		return Config{}, fmt.Errorf("ZIWEI_STORAGE %q: %w", cfg.Storage, domain.ErrInvalidSetting)
	}

	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = home
	}
	return cfg, nil
}

// DefaultHome returns ~/.ziwei.
func DefaultHome() (string, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(userHome, ".ziwei"), nil
}

// DatabasePath returns the chart database location under home.
func DatabasePath(home string) string {
	return filepath.Join(home, "data", "charts.db")
}
