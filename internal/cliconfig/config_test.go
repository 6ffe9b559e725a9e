package cliconfig

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/bikeshare/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != "." {
		t.Errorf("DataDir = %v, want .", cfg.DataDir)
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %v, want 5", cfg.PageSize)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if !cfg.ShowTimings {
		t.Error("ShowTimings = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid minimal config",
			config:  Config{DataDir: "/data", PageSize: 5, LogLevel: "info", HistoryDir: "/h"},
			wantErr: false,
		},
		{
			name:    "zero page size",
			config:  Config{DataDir: "/data", PageSize: 0, LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{DataDir: "/data", PageSize: 5, LogLevel: "chatty"},
			wantErr: true,
		},
		{
			name: "city override for unknown city",
			config: Config{
				DataDir: "/data", PageSize: 5, LogLevel: "info",
				Cities: map[string]string{"boston": "boston.csv"},
			},
			wantErr: true,
		},
		{
			name: "city override with empty file",
			config: Config{
				DataDir: "/data", PageSize: 5, LogLevel: "info",
				Cities: map[string]string{"chicago": ""},
			},
			wantErr: true,
		},
		{
			name: "valid city override",
			config: Config{
				DataDir: "/data", PageSize: 5, LogLevel: "info",
				Cities: map[string]string{"new york city": "nyc.csv"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	c1 := Config{PageSize: 5, LogLevel: "info"}
	if err := c1.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c1.DataDir != "." {
		t.Errorf("DataDir = %v, want .", c1.DataDir)
	}
	if c1.HistoryDir == "" {
		t.Error("HistoryDir was not derived")
	}

	// HistoryDir respects explicit override
	c2 := Config{DataDir: "/data", PageSize: 5, LogLevel: "info", HistoryDir: "/state"}
	if err := c2.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c2.HistoryDir != "/state" {
		t.Errorf("HistoryDir = %v, want /state", c2.HistoryDir)
	}
}

func TestConfig_Level(t *testing.T) {
	if got := (Config{LogLevel: "debug"}).Level(); got != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", got)
	}
	if got := (Config{LogLevel: "bogus"}).Level(); got != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn fallback", got)
	}
}

func TestConfig_CityFiles(t *testing.T) {
	cfg := Config{Cities: map[string]string{"chicago": "chi.csv", "washington": "/abs/dc.csv"}}
	files := cfg.CityFiles()
	if files[domain.Chicago] != "chi.csv" {
		t.Errorf("CityFiles()[chicago] = %v, want chi.csv", files[domain.Chicago])
	}
	if files[domain.Washington] != "/abs/dc.csv" {
		t.Errorf("CityFiles()[washington] = %v, want /abs/dc.csv", files[domain.Washington])
	}
	if _, ok := files[domain.NewYorkCity]; ok {
		t.Error("CityFiles() has unexpected new york city entry")
	}
}
