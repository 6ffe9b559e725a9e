package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bft-labs/bikeshare/internal/domain"
	"github.com/bft-labs/bikeshare/internal/pager"
)

// Config holds CLI configuration for bikeshare.
type Config struct {
	// DataDir holds the per-city CSV files.
	DataDir string
	// Cities overrides the data file name per city, keyed by city name.
	Cities map[string]string

	PageSize    int
	LogLevel    string
	ShowTimings bool
	NoColor     bool

	HistoryDir string
	NoHistory  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DataDir:     ".",
		PageSize:    pager.DefaultPageSize,
		LogLevel:    zerolog.WarnLevel.String(),
		ShowTimings: true,
		HistoryDir:  "", // Derived during Validate
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", domain.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}
	for name, file := range c.Cities {
		if _, err := domain.ParseCity(name); err != nil {
			return fmt.Errorf("%w: cities: %v", domain.ErrInvalidConfig, err)
		}
		if file == "" {
			return fmt.Errorf("%w: cities: empty file for %q", domain.ErrInvalidConfig, name)
		}
	}

	if c.HistoryDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			c.HistoryDir = filepath.Join(h, ".bikeshare")
		} else {
			c.HistoryDir = c.DataDir
		}
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// CityFiles returns the normalised data file overrides.
func (c Config) CityFiles() map[domain.City]string {
	out := make(map[domain.City]string, len(c.Cities))
	for name, file := range c.Cities {
		if city, err := domain.ParseCity(name); err == nil {
			out[city] = file
		}
	}
	return out
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
