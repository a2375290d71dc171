// Package config loads recase settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/unbound-force/recase/internal/style"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the default
// settings file location.
const EnvPath = "RECASE_SETTINGS"

// Config holds user settings.
type Config struct {
	// Priorities are style specifications tried after any given on the
	// command line, in order.
	Priorities []string `yaml:"priorities"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// DefaultPath returns the settings file location used when neither a
// path nor EnvPath is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, "recase", "config.yaml"), nil
}

// Load reads settings from path. An empty path falls back to EnvPath and
// then DefaultPath; a missing file at the default location yields
// DefaultConfig, while a missing file that was named explicitly is an
// error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML settings. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level and every priority specification.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if _, err := style.ParseAll(c.Priorities); err != nil {
		return fmt.Errorf("priorities: %w", err)
	}
	return nil
}

// Styles returns the parsed priority styles.
func (c *Config) Styles() ([]style.Style, error) {
	return style.ParseAll(c.Priorities)
}

// Level returns the configured log level, defaulting to warn.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
