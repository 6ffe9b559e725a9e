package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BIKESHARE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("data-dir", os.Getenv("BIKESHARE_DATA_DIR"), &cfg.DataDir)
	s.setString("log-level", os.Getenv("BIKESHARE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("history-dir", os.Getenv("BIKESHARE_HISTORY_DIR"), &cfg.HistoryDir)

	if err := s.setIntFromString("page-size", os.Getenv("BIKESHARE_PAGE_SIZE"), &cfg.PageSize); err != nil {
		return err
	}

	s.setBoolFromString("timings", os.Getenv("BIKESHARE_SHOW_TIMINGS"), &cfg.ShowTimings)
	s.setBoolFromString("no-color", os.Getenv("BIKESHARE_NO_COLOR"), &cfg.NoColor)
	s.setBoolFromString("no-history", os.Getenv("BIKESHARE_NO_HISTORY"), &cfg.NoHistory)

	return nil
}
