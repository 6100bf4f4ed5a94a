// Package config loads the optional TOML configuration file for imgcompress.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/dendrascience/dendra-image-compress/encoder"
)

// Config holds settings that may come from a file and be overridden by flags.
type Config struct {
	// Encoder is the encoder binary name or path.
	Encoder string `toml:"encoder"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// FailOnError makes a run with any failed file return an error.
	FailOnError bool `toml:"fail_on_error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Encoder:  encoder.DefaultBinary,
		LogLevel: "info",
	}
}

// Load reads path on top of Default. An empty path returns the defaults; a
// path that does not exist is an error, since it was asked for explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Encoder = strings.TrimSpace(c.Encoder)
	if c.Encoder == "" {
		c.Encoder = encoder.DefaultBinary
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that the configured values are usable.
func (c Config) Validate() error {
	if c.Encoder == "" {
		return errors.New("encoder must not be empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
