package cliconfig

import (
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"BIKESHARE_DATA_DIR":     "/env/data",
				"BIKESHARE_PAGE_SIZE":    "7",
				"BIKESHARE_LOG_LEVEL":    "debug",
				"BIKESHARE_HISTORY_DIR":  "/env/history",
				"BIKESHARE_NO_COLOR":     "true",
				"BIKESHARE_NO_HISTORY":   "1",
				"BIKESHARE_SHOW_TIMINGS": "false",
			},
			changed: map[string]bool{},
			initial: Config{ShowTimings: true},
			expected: Config{
				DataDir:     "/env/data",
				PageSize:    7,
				LogLevel:    "debug",
				HistoryDir:  "/env/history",
				NoColor:     true,
				NoHistory:   true,
				ShowTimings: false,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"BIKESHARE_DATA_DIR":  "/env/data",
				"BIKESHARE_PAGE_SIZE": "9",
			},
			changed: map[string]bool{"data-dir": true},
			initial: Config{DataDir: "/flag/data", PageSize: 5},
			expected: Config{
				DataDir:  "/flag/data",
				PageSize: 9,
			},
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"BIKESHARE_PAGE_SIZE": "not-a-number",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "ignores non-positive page size",
			envVars: map[string]string{
				"BIKESHARE_PAGE_SIZE": "0",
			},
			changed:  map[string]bool{},
			initial:  Config{PageSize: 5},
			expected: Config{PageSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"BIKESHARE_DATA_DIR", "BIKESHARE_PAGE_SIZE", "BIKESHARE_LOG_LEVEL", "BIKESHARE_HISTORY_DIR",
				"BIKESHARE_NO_COLOR", "BIKESHARE_NO_HISTORY", "BIKESHARE_SHOW_TIMINGS",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}

			if cfg.DataDir != tt.expected.DataDir {
				t.Errorf("DataDir = %v, want %v", cfg.DataDir, tt.expected.DataDir)
			}
			if cfg.PageSize != tt.expected.PageSize {
				t.Errorf("PageSize = %v, want %v", cfg.PageSize, tt.expected.PageSize)
			}
			if cfg.LogLevel != tt.expected.LogLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.expected.LogLevel)
			}
			if cfg.HistoryDir != tt.expected.HistoryDir {
				t.Errorf("HistoryDir = %v, want %v", cfg.HistoryDir, tt.expected.HistoryDir)
			}
			if cfg.NoColor != tt.expected.NoColor {
				t.Errorf("NoColor = %v, want %v", cfg.NoColor, tt.expected.NoColor)
			}
			if cfg.NoHistory != tt.expected.NoHistory {
				t.Errorf("NoHistory = %v, want %v", cfg.NoHistory, tt.expected.NoHistory)
			}
			if cfg.ShowTimings != tt.expected.ShowTimings {
				t.Errorf("ShowTimings = %v, want %v", cfg.ShowTimings, tt.expected.ShowTimings)
			}
		})
	}
}
