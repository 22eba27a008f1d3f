// Package infra holds the ambient plumbing: configuration, logging and
// metrics. Nothing in here knows the trading protocol.
package infra

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration. Values load from a yaml
// file first; credentials can then be overridden from the environment so
// they never have to live in the file.
type Config struct {
	Server struct {
		Address  string `yaml:"address"`
		Username string `yaml:"username" env:"COMSTAR_USERNAME"`
		Password string `yaml:"password" env:"COMSTAR_PASSWORD"`
		Key      string `yaml:"key" env:"COMSTAR_KEY"`
	} `yaml:"server"`

	Trading struct {
		RoutingType    string `yaml:"routing_type"`
		ValidUntilTime string `yaml:"valid_until_time"`
	} `yaml:"trading"`

	Gateway struct {
		Name      string `yaml:"name"`
		InboxSize int    `yaml:"inbox_size"`
	} `yaml:"gateway"`

	Metrics struct {
		Addr string `yaml:"addr"` // empty disables the /metrics listener
	} `yaml:"metrics"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text or json
	} `yaml:"logging"`
}

// LoadConfig reads and validates the yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Environment overrides credentials from the file.
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("env override: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Trading.RoutingType == "" {
		cfg.Trading.RoutingType = "5"
	}
	if cfg.Trading.ValidUntilTime == "" {
		cfg.Trading.ValidUntilTime = "18:30:00.000"
	}
	if cfg.Gateway.Name == "" {
		cfg.Gateway.Name = "COMSTAR"
	}
	if cfg.Gateway.InboxSize == 0 {
		cfg.Gateway.InboxSize = 4096
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Gateway.InboxSize <= 0 {
		return fmt.Errorf("inbox size must be positive")
	}
	if _, err := time.Parse("15:04:05.000", c.Trading.ValidUntilTime); err != nil {
		return fmt.Errorf("invalid valid_until_time %q: %w", c.Trading.ValidUntilTime, err)
	}
	return nil
}
