package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".storesconfig.yaml"

	// Environment variables that override the config file.
	EnvDataFile = "STORES_FILE"
	EnvLogLevel = "STORES_LOG_LEVEL"

	// Default configuration values
	DefaultDataFile = "stores.json"
	DefaultLogLevel = "warn"
	DefaultColor    = ColorAuto
)

// Color modes for console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .storesconfig.yaml.
// This file is user-managed and never written by stores.
type Config struct {
	// DataFile is the path of the JSON catalog file.
	DataFile string `yaml:"data_file"`

	// LogLevel is the minimum zap level written to stderr.
	LogLevel string `yaml:"log_level"`

	// Color is one of auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
		Color:    DefaultColor,
	}
}

// LoadConfig loads .storesconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides config values with non-empty environment variables
// looked up through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q in %s (expected auto, always or never)", c.Color, userConfigFile)
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file in %s must not be empty", userConfigFile)
	}
	return nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
