// Package config loads command line defaults from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Output formats understood by the command line tool.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the environment-provided defaults. Flags override them.
type Config struct {
	LogLevel    string `env:"XORSAT_LOG_LEVEL" envDefault:"warn"`
	Format      string `env:"XORSAT_FORMAT" envDefault:"text"`
	Workers     int    `env:"XORSAT_WORKERS" envDefault:"0"`
	Verify      bool   `env:"XORSAT_VERIFY" envDefault:"false"`
	VerifyLimit int    `env:"XORSAT_VERIFY_LIMIT" envDefault:"65536"`
	MetricsFile string `env:"XORSAT_METRICS_FILE"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the values that flags cannot constrain by type.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Format, FormatText, FormatYAML)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d", c.Workers)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
