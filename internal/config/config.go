// Package config loads argonpass settings from the environment and layers
// per-site profiles over variant defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ARGONPASS_"

// Config holds process-wide settings. None of them affect the generated
// password except Variant, which only supplies defaults.
type Config struct {
	// Variant selects the default behaviour: "extended" or "simple".
	Variant string `env:"VARIANT" envDefault:"extended"`
	// DataDir holds the site profile database. Empty disables persistence.
	DataDir string `env:"DATA_DIR"`
	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	// LogFile, when set, receives JSON logs instead of stderr.
	LogFile string `env:"LOG_FILE"`
	// NoClipboard disables the clipboard sink.
	NoClipboard bool `env:"NO_CLIPBOARD"`
	// Timeout bounds key derivation. Zero means no limit.
	Timeout time.Duration `env:"TIMEOUT"`
}

// Load reads the configuration from ARGONPASS_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%w: error getting env configs: %w", ErrInvalidConfig, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if _, err := ParseVariant(c.Variant); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DatabasePath returns the site profile database path, or "" when
// persistence is disabled.
func (c *Config) DatabasePath() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, "sites.db")
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "argonpass")
}
