package config

import (
	"fmt"
	"slices"
)

// Defaults applied before any source is read.
const (
	DefaultTheme     = "classic"
	DefaultColor     = "auto"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultOrder     = "title"
)

var (
	themes     = []string{"classic", "neon", "mono"}
	colors     = []string{"auto", "always", "never"}
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "json", "logfmt"}
	orders     = []string{"title", "priority"}
)

// Config is the merged configuration for one tada run.
type Config struct {
	// Theme is one of: classic | neon | mono.
	Theme string `toml:"theme" yaml:"theme"`

	// Color is one of: auto | always | never.
	Color string `toml:"color" yaml:"color"`

	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// Order picks how listings are sorted: title | priority.
	Order string `toml:"order" yaml:"order"`

	// Seed titles are added to the store before any command runs.
	Seed []string `toml:"seed" yaml:"seed"`

	// Path is the config file that was read, empty if none.
	Path string `toml:"-" yaml:"-"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	return &Config{
		Theme:     DefaultTheme,
		Color:     DefaultColor,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Order:     DefaultOrder,
	}
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"theme", c.Theme, themes},
		{"color", c.Color, colors},
		{"log_level", c.LogLevel, logLevels},
		{"log_format", c.LogFormat, logFormats},
		{"order", c.Order, orders},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allowed, ch.value) {
			return fmt.Errorf("invalid %s %q: want one of %v", ch.field, ch.value, ch.allowed)
		}
	}
	return nil
}

// merge copies every non-empty field of src onto c.
func (c *Config) merge(src *Config) {
	if src.Theme != "" {
		c.Theme = src.Theme
	}
	if src.Color != "" {
		c.Color = src.Color
	}
	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}
	if src.LogFormat != "" {
		c.LogFormat = src.LogFormat
	}
	if src.Order != "" {
		c.Order = src.Order
	}
	if len(src.Seed) > 0 {
		c.Seed = slices.Clone(src.Seed)
	}
}
