package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config with optional booleans so unset keys keep defaults.
type FileConfig struct {
	DataDir     string            `toml:"data_dir" yaml:"data_dir"`
	Cities      map[string]string `toml:"cities" yaml:"cities"`
	PageSize    int               `toml:"page_size" yaml:"page_size"`
	LogLevel    string            `toml:"log_level" yaml:"log_level"`
	ShowTimings *bool             `toml:"show_timings" yaml:"show_timings"`
	NoColor     *bool             `toml:"no_color" yaml:"no_color"`
	HistoryDir  string            `toml:"history_dir" yaml:"history_dir"`
	NoHistory   *bool             `toml:"no_history" yaml:"no_history"`
}

// LoadFileConfig reads and parses a config file. Files ending in .yaml or
// .yml are decoded as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.bikeshare/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".bikeshare", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("data-dir", fc.DataDir, &cfg.DataDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("history-dir", fc.HistoryDir, &cfg.HistoryDir)

	s.setInt("page-size", fc.PageSize, &cfg.PageSize)

	s.setBool("timings", fc.ShowTimings, &cfg.ShowTimings)
	s.setBool("no-color", fc.NoColor, &cfg.NoColor)
	s.setBool("no-history", fc.NoHistory, &cfg.NoHistory)

	if len(fc.Cities) > 0 {
		if cfg.Cities == nil {
			cfg.Cities = make(map[string]string, len(fc.Cities))
		}
		for name, file := range fc.Cities {
			cfg.Cities[strings.ToLower(strings.TrimSpace(name))] = file
		}
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
