package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mcuadros/go-defaults"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	// Binary is the external Bluetooth controller command all radio and
	// link operations are delegated to.
	Binary string `yaml:"binary" default:"bluetoothctl"`

	// Trigger is the query prefix registered with the launcher frontend.
	Trigger string `yaml:"trigger" default:"bt"`

	LogLevel     string `yaml:"log_level" default:"panic"`
	OutputFormat string `yaml:"output_format" default:"table"` // table, json
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	return cfg
}

// Load reads a YAML config file, filling unset fields with defaults. A
// missing file is not an error: defaults apply wholesale.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// NewLogger creates a configured logger instance
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	// Use structured logging format
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return logger, nil
}
